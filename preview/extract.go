// ABOUTME: The extraction abstraction: ParamSet/Extractor interfaces plus fixed-arity tuples 2-8.
// ABOUTME: Tuples list params in declaration order, route updates by position, and extract typed values.
package preview

// ParamSet is the untyped side of an extractable parameter set: list the
// current values in declaration order, apply a value by position, and restore
// defaults. UpdateAt with an out-of-range index or a mismatched value kind is
// a no-op, never an error.
type ParamSet interface {
	ToParams() []Param
	UpdateAt(index int, v Value)
	Reset()
}

// Extractor is a ParamSet that can collapse into the strongly-typed values
// consumed by a component's generator function. A single Adapter satisfies
// Extractor for its own value type; tuples of 2 through 8 adapters satisfy it
// for the matching ValuesN type. Arity 8 is a deliberate ergonomic cap.
type Extractor[V any] interface {
	ParamSet
	Extract() V
}

// Values2 through Values8 are the typed extraction results for tuples.
type Values2[A, B any] struct {
	V0 A
	V1 B
}

type Values3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

type Values4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

type Values5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

type Values6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

type Values7[A, B, C, D, E, F, G any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
}

type Values8[A, B, C, D, E, F, G, H any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
}

// Args2 is a two-adapter parameter set.
type Args2[A, B any] struct {
	P0 Adapter[A]
	P1 Adapter[B]
}

// Tuple2 combines two adapters into an extractable set.
func Tuple2[A, B any](p0 Adapter[A], p1 Adapter[B]) *Args2[A, B] {
	return &Args2[A, B]{P0: p0, P1: p1}
}

func (a *Args2[A, B]) ToParams() []Param {
	return []Param{a.P0.ToParam(), a.P1.ToParam()}
}

func (a *Args2[A, B]) UpdateAt(index int, v Value) {
	switch index {
	case 0:
		a.P0.Apply(v)
	case 1:
		a.P1.Apply(v)
	}
}

func (a *Args2[A, B]) Reset() {
	a.P0.Reset()
	a.P1.Reset()
}

func (a *Args2[A, B]) Extract() Values2[A, B] {
	return Values2[A, B]{V0: a.P0.Value(), V1: a.P1.Value()}
}

// Args3 is a three-adapter parameter set.
type Args3[A, B, C any] struct {
	P0 Adapter[A]
	P1 Adapter[B]
	P2 Adapter[C]
}

// Tuple3 combines three adapters into an extractable set.
func Tuple3[A, B, C any](p0 Adapter[A], p1 Adapter[B], p2 Adapter[C]) *Args3[A, B, C] {
	return &Args3[A, B, C]{P0: p0, P1: p1, P2: p2}
}

func (a *Args3[A, B, C]) ToParams() []Param {
	return []Param{a.P0.ToParam(), a.P1.ToParam(), a.P2.ToParam()}
}

func (a *Args3[A, B, C]) UpdateAt(index int, v Value) {
	switch index {
	case 0:
		a.P0.Apply(v)
	case 1:
		a.P1.Apply(v)
	case 2:
		a.P2.Apply(v)
	}
}

func (a *Args3[A, B, C]) Reset() {
	a.P0.Reset()
	a.P1.Reset()
	a.P2.Reset()
}

func (a *Args3[A, B, C]) Extract() Values3[A, B, C] {
	return Values3[A, B, C]{V0: a.P0.Value(), V1: a.P1.Value(), V2: a.P2.Value()}
}

// Args4 is a four-adapter parameter set.
type Args4[A, B, C, D any] struct {
	P0 Adapter[A]
	P1 Adapter[B]
	P2 Adapter[C]
	P3 Adapter[D]
}

// Tuple4 combines four adapters into an extractable set.
func Tuple4[A, B, C, D any](p0 Adapter[A], p1 Adapter[B], p2 Adapter[C], p3 Adapter[D]) *Args4[A, B, C, D] {
	return &Args4[A, B, C, D]{P0: p0, P1: p1, P2: p2, P3: p3}
}

func (a *Args4[A, B, C, D]) ToParams() []Param {
	return []Param{a.P0.ToParam(), a.P1.ToParam(), a.P2.ToParam(), a.P3.ToParam()}
}

func (a *Args4[A, B, C, D]) UpdateAt(index int, v Value) {
	switch index {
	case 0:
		a.P0.Apply(v)
	case 1:
		a.P1.Apply(v)
	case 2:
		a.P2.Apply(v)
	case 3:
		a.P3.Apply(v)
	}
}

func (a *Args4[A, B, C, D]) Reset() {
	a.P0.Reset()
	a.P1.Reset()
	a.P2.Reset()
	a.P3.Reset()
}

func (a *Args4[A, B, C, D]) Extract() Values4[A, B, C, D] {
	return Values4[A, B, C, D]{V0: a.P0.Value(), V1: a.P1.Value(), V2: a.P2.Value(), V3: a.P3.Value()}
}

// Args5 is a five-adapter parameter set.
type Args5[A, B, C, D, E any] struct {
	P0 Adapter[A]
	P1 Adapter[B]
	P2 Adapter[C]
	P3 Adapter[D]
	P4 Adapter[E]
}

// Tuple5 combines five adapters into an extractable set.
func Tuple5[A, B, C, D, E any](p0 Adapter[A], p1 Adapter[B], p2 Adapter[C], p3 Adapter[D], p4 Adapter[E]) *Args5[A, B, C, D, E] {
	return &Args5[A, B, C, D, E]{P0: p0, P1: p1, P2: p2, P3: p3, P4: p4}
}

func (a *Args5[A, B, C, D, E]) ToParams() []Param {
	return []Param{a.P0.ToParam(), a.P1.ToParam(), a.P2.ToParam(), a.P3.ToParam(), a.P4.ToParam()}
}

func (a *Args5[A, B, C, D, E]) UpdateAt(index int, v Value) {
	switch index {
	case 0:
		a.P0.Apply(v)
	case 1:
		a.P1.Apply(v)
	case 2:
		a.P2.Apply(v)
	case 3:
		a.P3.Apply(v)
	case 4:
		a.P4.Apply(v)
	}
}

func (a *Args5[A, B, C, D, E]) Reset() {
	a.P0.Reset()
	a.P1.Reset()
	a.P2.Reset()
	a.P3.Reset()
	a.P4.Reset()
}

func (a *Args5[A, B, C, D, E]) Extract() Values5[A, B, C, D, E] {
	return Values5[A, B, C, D, E]{
		V0: a.P0.Value(), V1: a.P1.Value(), V2: a.P2.Value(),
		V3: a.P3.Value(), V4: a.P4.Value(),
	}
}

// Args6 is a six-adapter parameter set.
type Args6[A, B, C, D, E, F any] struct {
	P0 Adapter[A]
	P1 Adapter[B]
	P2 Adapter[C]
	P3 Adapter[D]
	P4 Adapter[E]
	P5 Adapter[F]
}

// Tuple6 combines six adapters into an extractable set.
func Tuple6[A, B, C, D, E, F any](p0 Adapter[A], p1 Adapter[B], p2 Adapter[C], p3 Adapter[D], p4 Adapter[E], p5 Adapter[F]) *Args6[A, B, C, D, E, F] {
	return &Args6[A, B, C, D, E, F]{P0: p0, P1: p1, P2: p2, P3: p3, P4: p4, P5: p5}
}

func (a *Args6[A, B, C, D, E, F]) ToParams() []Param {
	return []Param{
		a.P0.ToParam(), a.P1.ToParam(), a.P2.ToParam(),
		a.P3.ToParam(), a.P4.ToParam(), a.P5.ToParam(),
	}
}

func (a *Args6[A, B, C, D, E, F]) UpdateAt(index int, v Value) {
	switch index {
	case 0:
		a.P0.Apply(v)
	case 1:
		a.P1.Apply(v)
	case 2:
		a.P2.Apply(v)
	case 3:
		a.P3.Apply(v)
	case 4:
		a.P4.Apply(v)
	case 5:
		a.P5.Apply(v)
	}
}

func (a *Args6[A, B, C, D, E, F]) Reset() {
	a.P0.Reset()
	a.P1.Reset()
	a.P2.Reset()
	a.P3.Reset()
	a.P4.Reset()
	a.P5.Reset()
}

func (a *Args6[A, B, C, D, E, F]) Extract() Values6[A, B, C, D, E, F] {
	return Values6[A, B, C, D, E, F]{
		V0: a.P0.Value(), V1: a.P1.Value(), V2: a.P2.Value(),
		V3: a.P3.Value(), V4: a.P4.Value(), V5: a.P5.Value(),
	}
}

// Args7 is a seven-adapter parameter set.
type Args7[A, B, C, D, E, F, G any] struct {
	P0 Adapter[A]
	P1 Adapter[B]
	P2 Adapter[C]
	P3 Adapter[D]
	P4 Adapter[E]
	P5 Adapter[F]
	P6 Adapter[G]
}

// Tuple7 combines seven adapters into an extractable set.
func Tuple7[A, B, C, D, E, F, G any](p0 Adapter[A], p1 Adapter[B], p2 Adapter[C], p3 Adapter[D], p4 Adapter[E], p5 Adapter[F], p6 Adapter[G]) *Args7[A, B, C, D, E, F, G] {
	return &Args7[A, B, C, D, E, F, G]{P0: p0, P1: p1, P2: p2, P3: p3, P4: p4, P5: p5, P6: p6}
}

func (a *Args7[A, B, C, D, E, F, G]) ToParams() []Param {
	return []Param{
		a.P0.ToParam(), a.P1.ToParam(), a.P2.ToParam(), a.P3.ToParam(),
		a.P4.ToParam(), a.P5.ToParam(), a.P6.ToParam(),
	}
}

func (a *Args7[A, B, C, D, E, F, G]) UpdateAt(index int, v Value) {
	switch index {
	case 0:
		a.P0.Apply(v)
	case 1:
		a.P1.Apply(v)
	case 2:
		a.P2.Apply(v)
	case 3:
		a.P3.Apply(v)
	case 4:
		a.P4.Apply(v)
	case 5:
		a.P5.Apply(v)
	case 6:
		a.P6.Apply(v)
	}
}

func (a *Args7[A, B, C, D, E, F, G]) Reset() {
	a.P0.Reset()
	a.P1.Reset()
	a.P2.Reset()
	a.P3.Reset()
	a.P4.Reset()
	a.P5.Reset()
	a.P6.Reset()
}

func (a *Args7[A, B, C, D, E, F, G]) Extract() Values7[A, B, C, D, E, F, G] {
	return Values7[A, B, C, D, E, F, G]{
		V0: a.P0.Value(), V1: a.P1.Value(), V2: a.P2.Value(), V3: a.P3.Value(),
		V4: a.P4.Value(), V5: a.P5.Value(), V6: a.P6.Value(),
	}
}

// Args8 is an eight-adapter parameter set, the largest supported arity.
type Args8[A, B, C, D, E, F, G, H any] struct {
	P0 Adapter[A]
	P1 Adapter[B]
	P2 Adapter[C]
	P3 Adapter[D]
	P4 Adapter[E]
	P5 Adapter[F]
	P6 Adapter[G]
	P7 Adapter[H]
}

// Tuple8 combines eight adapters into an extractable set.
func Tuple8[A, B, C, D, E, F, G, H any](p0 Adapter[A], p1 Adapter[B], p2 Adapter[C], p3 Adapter[D], p4 Adapter[E], p5 Adapter[F], p6 Adapter[G], p7 Adapter[H]) *Args8[A, B, C, D, E, F, G, H] {
	return &Args8[A, B, C, D, E, F, G, H]{P0: p0, P1: p1, P2: p2, P3: p3, P4: p4, P5: p5, P6: p6, P7: p7}
}

func (a *Args8[A, B, C, D, E, F, G, H]) ToParams() []Param {
	return []Param{
		a.P0.ToParam(), a.P1.ToParam(), a.P2.ToParam(), a.P3.ToParam(),
		a.P4.ToParam(), a.P5.ToParam(), a.P6.ToParam(), a.P7.ToParam(),
	}
}

func (a *Args8[A, B, C, D, E, F, G, H]) UpdateAt(index int, v Value) {
	switch index {
	case 0:
		a.P0.Apply(v)
	case 1:
		a.P1.Apply(v)
	case 2:
		a.P2.Apply(v)
	case 3:
		a.P3.Apply(v)
	case 4:
		a.P4.Apply(v)
	case 5:
		a.P5.Apply(v)
	case 6:
		a.P6.Apply(v)
	case 7:
		a.P7.Apply(v)
	}
}

func (a *Args8[A, B, C, D, E, F, G, H]) Reset() {
	a.P0.Reset()
	a.P1.Reset()
	a.P2.Reset()
	a.P3.Reset()
	a.P4.Reset()
	a.P5.Reset()
	a.P6.Reset()
	a.P7.Reset()
}

func (a *Args8[A, B, C, D, E, F, G, H]) Extract() Values8[A, B, C, D, E, F, G, H] {
	return Values8[A, B, C, D, E, F, G, H]{
		V0: a.P0.Value(), V1: a.P1.Value(), V2: a.P2.Value(), V3: a.P3.Value(),
		V4: a.P4.Value(), V5: a.P5.Value(), V6: a.P6.Value(), V7: a.P7.Value(),
	}
}
