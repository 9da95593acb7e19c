package ast

import (
	"fmt"
	"strings"

	"github.com/luxlang/luxc/internal/token"
)

// Kind discriminates the Type sum type.
type Kind int

const (
	KindBasic Kind = iota
	KindPointer
	KindStruct
	KindUnknown
	KindInferred
	KindVoid
)

// Type is implemented by every type node. Size and Align are only
// meaningful once the node is no longer a placeholder (UNKNOWN or
// INFERRED); every concrete type carries its size and alignment in bytes.
type Type interface {
	Kind() Kind
	Size() int
	Align() int
	String() string
}

// BasicType is one of the fixed-size scalar types: u8/u16/u32/u64,
// s8/s16/s32/s64, char.
type BasicType struct {
	Bytes  int
	Signed bool
	Name   string // for diagnostics and the tree printer, e.g. "u32"
}

func (b *BasicType) Kind() Kind    { return KindBasic }
func (b *BasicType) Size() int     { return b.Bytes }
func (b *BasicType) Align() int    { return b.Bytes }
func (b *BasicType) String() string { return b.Name }

// The nine basic type singletons. Shared by every reference to
// e.g. u32, never copied — safe because BasicType carries no mutable state.
var (
	U8   = &BasicType{Bytes: 1, Signed: false, Name: "u8"}
	U16  = &BasicType{Bytes: 2, Signed: false, Name: "u16"}
	U32  = &BasicType{Bytes: 4, Signed: false, Name: "u32"}
	U64  = &BasicType{Bytes: 8, Signed: false, Name: "u64"}
	S8   = &BasicType{Bytes: 1, Signed: true, Name: "s8"}
	S16  = &BasicType{Bytes: 2, Signed: true, Name: "s16"}
	S32  = &BasicType{Bytes: 4, Signed: true, Name: "s32"}
	S64  = &BasicType{Bytes: 8, Signed: true, Name: "s64"}
	Char = &BasicType{Bytes: 1, Signed: true, Name: "char"}
)

// BasicByKeyword maps a lux basic-type keyword to its singleton, used by
// the parser's type grammar.
var BasicByKeyword = map[token.Kind]*BasicType{
	token.U8:   U8,
	token.U16:  U16,
	token.U32:  U32,
	token.U64:  U64,
	token.S8:   S8,
	token.S16:  S16,
	token.S32:  S32,
	token.S64:  S64,
	token.CHAR: Char,
}

// PointerType is a plain pointer (Count == 0) or a fixed-size array
// (Count == N). Pointee is mutated in place by the resolver when it starts
// out UNKNOWN and later resolves, so other Types that embed this same
// *PointerType see the resolved pointee without re-walking the tree.
type PointerType struct {
	Pointee Type
	Count   int
}

func (p *PointerType) Kind() Kind { return KindPointer }
func (p *PointerType) Size() int  { return 8 }
func (p *PointerType) Align() int { return 8 }
func (p *PointerType) String() string {
	if p.Count > 0 {
		return fmt.Sprintf("[%d]%s", p.Count, p.Pointee)
	}
	return "*" + p.Pointee.String()
}

// StructMember is one field of a struct or union: named, or an anonymous
// nested aggregate.
type StructMember struct {
	Name   string // empty for an anonymous nested struct/union
	Type   Type
	Offset int
	Tok    token.Token
}

// StructScope is the per-tagged-aggregate namespace: it enforces
// member-name uniqueness, including names hoisted up from anonymous
// nested aggregates, and accelerates DOT lookup. It is distinct from Scope
// and only exists for tagged struct/union declarations.
type StructScope struct {
	byName         map[string]*StructMember
	Order          []*StructMember // insertion order, for deterministic type resolution
	TypingComplete bool
}

// NewStructScope creates an empty StructScope.
func NewStructScope() *StructScope {
	return &StructScope{byName: make(map[string]*StructMember)}
}

// Declare registers member under name. The uniqueness check is the
// caller's job (the parser calls Lookup first so it can report "duplicate
// struct member" with the original token).
func (s *StructScope) Declare(name string, m *StructMember) {
	s.byName[name] = m
	s.Order = append(s.Order, m)
}

// Lookup finds a member by name, walking only this scope (struct scopes do
// not nest via a parent pointer — anonymous members are hoisted in by
// value instead).
func (s *StructScope) Lookup(name string) (*StructMember, bool) {
	m, ok := s.byName[name]
	return m, ok
}

// StructType is a struct (IsUnion == false) or union (IsUnion == true),
// tagged or anonymous. Members is the ordered member list used for layout
//; Scope is nil for an anonymous nested aggregate and
// non-nil for a tagged struct/union, where it is the flattened
// name-to-member index used by DOT resolution.
type StructType struct {
	IsUnion bool
	Members []*StructMember
	Scope   *StructScope

	bytes int
	align int
	laidOut bool
}

func (s *StructType) Kind() Kind { return KindStruct }
func (s *StructType) Size() int  { return s.bytes }
func (s *StructType) Align() int { return s.align }

// SetLayout records the computed size/alignment once the struct layout
// walk has run. LaidOut reports whether that has happened yet.
func (s *StructType) SetLayout(size, align int) {
	s.bytes, s.align = size, align
	s.laidOut = true
}

func (s *StructType) LaidOut() bool { return s.laidOut }

func (s *StructType) String() string {
	kw := "struct"
	if s.IsUnion {
		kw = "union"
	}
	var names []string
	for _, m := range s.Members {
		if m.Name == "" {
			names = append(names, m.Type.String())
		} else {
			names = append(names, m.Name+": "+m.Type.String())
		}
	}
	return kw + " { " + strings.Join(names, "; ") + " }"
}

// UnknownType is an identifier used as a type that has not yet been
// resolved to a declared typedef's target type.
type UnknownType struct {
	Name string
	Tok  token.Token
}

func (u *UnknownType) Kind() Kind     { return KindUnknown }
func (u *UnknownType) Size() int      { return 0 }
func (u *UnknownType) Align() int     { return 0 }
func (u *UnknownType) String() string { return u.Name }

// InferredType stands in for `name : = expr;` until the fixed-point driver
// back-fills it from the initializer's type.
type InferredType struct{}

func (InferredType) Kind() Kind     { return KindInferred }
func (InferredType) Size() int      { return 0 }
func (InferredType) Align() int     { return 0 }
func (InferredType) String() string { return "<inferred>" }

// Inferred is the shared INFERRED placeholder singleton.
var Inferred = InferredType{}

// VoidType is the return type of a function declared with no `-> type`.
type VoidType struct{}

func (VoidType) Kind() Kind     { return KindVoid }
func (VoidType) Size() int      { return 0 }
func (VoidType) Align() int     { return 0 }
func (VoidType) String() string { return "void" }

// Void is the shared VOID singleton.
var Void = VoidType{}

// IsResolved reports whether t is a concrete type: not UNKNOWN, not
// INFERRED.
func IsResolved(t Type) bool {
	return t != nil && t.Kind() != KindUnknown && t.Kind() != KindInferred
}
