// Package samples holds fixture owner types covering every property shape
// the accessor layer distinguishes: reference owners, value owners, static
// storage, non-public members, by-reference aliases, and a stack-only view.
package samples

import "sync"

// 1. Person is a reference-owner fixture: accessed through *Person, mixing
// exported fields, a non-public field, and getter/setter methods.
type Person struct {
	Name string `json:"name"`
	Age  int32  `json:"age"`
	note string
}

func (p *Person) Note() string     { return p.note }
func (p *Person) SetNote(s string) { p.note = s }

// 2. Point is a value-owner fixture: instances travel by value, so property
// writes must reach the caller's copy through a pointer.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Norm2() float64   { return p.X*p.X + p.Y*p.Y }
func (p *Point) SetX(x float64)  { p.X = x }
func (p *Point) Scale(k float64) { p.X, p.Y = p.X*k, p.Y*k }

// 3. Wallet exposes a by-reference property: BalanceRef yields an alias into
// the wallet's storage rather than a copy of the balance. Cap holds an alias
// into externally managed limit storage.
type Wallet struct {
	balance int64
	Cap     *int64
}

func NewWallet(balance int64) *Wallet { return &Wallet{balance: balance} }

func (w *Wallet) BalanceRef() *int64 { return &w.balance }

// 4. Static storage: a package-level counter with type-associated accessors.
var totalOrders int32

func Orders() int32     { return totalOrders }
func SetOrders(n int32) { totalOrders = n }

// OrdersVar exposes the static storage slot itself for slot-backed bindings.
func OrdersVar() *int32 { return &totalOrders }

// 5. BufferView is a stack-only fixture: the embedded mutex makes it
// copy-hostile, so it can never cross the boxed accessor contract.
type BufferView struct {
	mu   sync.Mutex
	data []byte
	off  int
}

func (b *BufferView) Len() int { return len(b.data) - b.off }

// 6. Pipeline holds a stack-only value by value; its View property can be
// described but never invoked.
type Pipeline struct {
	Name string
	View BufferView
}

// 7. Odometer carries a deliberate defect: SetReading receives the owner by
// value, so the write lands in a copy. The static audit flags it.
type Odometer struct {
	miles int
}

func (o Odometer) Reading() int     { return o.miles }
func (o Odometer) SetReading(m int) { o.miles = m }
