// Package symbols implements the analyzer's scope model: an ordered stack
// of frames mapping names to inferred types. The top frame is innermost;
// shadowing across frames is permitted, duplicates within a frame are not.
package symbols

import "github.com/camlet-lang/camlet/internal/typesystem"

type SymbolTable struct {
	frames []map[string]typesystem.Type
}

// New returns a table with a single (global) frame.
func New() *SymbolTable {
	return &SymbolTable{frames: []map[string]typesystem.Type{{}}}
}

// PushFrame opens a new innermost frame.
func (st *SymbolTable) PushFrame() {
	st.frames = append(st.frames, map[string]typesystem.Type{})
}

// PopFrame discards the innermost frame. The global frame is never popped.
func (st *SymbolTable) PopFrame() {
	if len(st.frames) > 1 {
		st.frames = st.frames[:len(st.frames)-1]
	}
}

// Define binds name in the innermost frame. It reports false if the name
// is already bound in that frame.
func (st *SymbolTable) Define(name string, t typesystem.Type) bool {
	frame := st.frames[len(st.frames)-1]
	if _, ok := frame[name]; ok {
		return false
	}
	frame[name] = t
	return true
}

// Rebind replaces an existing binding in the innermost frame. Used when a
// recursive binding's provisional type is refined after its body is known.
func (st *SymbolTable) Rebind(name string, t typesystem.Type) {
	frame := st.frames[len(st.frames)-1]
	if _, ok := frame[name]; ok {
		frame[name] = t
	}
}

// Undefine removes name from the innermost frame, if present. Used to
// discard a provisional recursive binding when its body fails analysis, so
// the failed declaration leaves no trace.
func (st *SymbolTable) Undefine(name string) {
	delete(st.frames[len(st.frames)-1], name)
}

// Resolve looks name up from the innermost frame outward.
func (st *SymbolTable) Resolve(name string) (typesystem.Type, bool) {
	for i := len(st.frames) - 1; i >= 0; i-- {
		if t, ok := st.frames[i][name]; ok {
			return t, true
		}
	}
	return typesystem.Unknown, false
}

// DefinedInCurrent reports whether name is bound in the innermost frame.
func (st *SymbolTable) DefinedInCurrent(name string) bool {
	_, ok := st.frames[len(st.frames)-1][name]
	return ok
}

// Depth returns the number of open frames.
func (st *SymbolTable) Depth() int { return len(st.frames) }
