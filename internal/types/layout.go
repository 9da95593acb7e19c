package types

import "github.com/luxlang/luxc/internal/ast"

// align rounds n up to the next multiple of alignment.
func align(n, alignment int) int {
	if alignment == 0 {
		return n
	}
	if rem := n % alignment; rem != 0 {
		n += alignment - rem
	}
	return n
}

// computeStructOffsets walks st's literal member list (which, unlike
// Scope.Order, still contains anonymous nested aggregates as their own
// entries) bottom-up, laying out struct members at increasing
// alignment-padded offsets and union members all at offset 0, then records
// st's own size and alignment. It recurses into an anonymous nested
// aggregate (Scope == nil) first, since that is the only place one ever
// gets laid out; a tagged member (Scope != nil, e.g. a field typed by an
// earlier typedef) is never reached here until the resolver has already
// confirmed it LaidOut() and laid it out independently at its own
// declaration — recursing into it again here would be redundant, not
// merely harmless, so it is skipped.
//
// A struct's size is the aligned-up running offset, not a plain sum of
// member sizes: a member that needs padding before it (because an earlier,
// narrower member left the running offset unaligned for it) still leaves
// that padding counted in the final size. Only a union tracks a separate
// running maximum, since its members all sit at offset 0.
func computeStructOffsets(st *ast.StructType) {
	offset := 0
	alignment := 0
	maxSize := 0

	for _, m := range st.Members {
		if sub, ok := m.Type.(*ast.StructType); ok && sub.Scope == nil {
			computeStructOffsets(sub)
		}

		if st.IsUnion {
			m.Offset = 0
			if mSize := m.Type.Size(); mSize > maxSize {
				maxSize = mSize
			}
		} else {
			offset = align(offset, m.Type.Size())
			m.Offset = offset
			offset += m.Type.Size()
		}

		if mAlign := m.Type.Align(); mAlign > alignment {
			alignment = mAlign
		}
	}

	if st.IsUnion {
		st.SetLayout(align(maxSize, alignment), alignment)
	} else {
		st.SetLayout(align(offset, alignment), alignment)
	}
}

// fixStructOffsets turns the offsets computeStructOffsets assigned within
// each nested anonymous aggregate (relative to that aggregate's own start)
// into offsets relative to the outermost tagged struct/union, by threading
// the running base offset down through the member tree. It only recurses
// into an anonymous nested aggregate (Scope == nil); a tagged member's
// offsets are already absolute relative to its own start and were fixed up
// independently when that struct was laid out at its own declaration.
func fixStructOffsets(st *ast.StructType, offset int) {
	if st.Scope != nil {
		offset = 0
	}
	for _, m := range st.Members {
		m.Offset += offset
		if sub, ok := m.Type.(*ast.StructType); ok && sub.Scope == nil {
			fixStructOffsets(sub, m.Offset)
		}
	}
}
