// builtin_mem.go
//
// The low-level memory words are recognized so programs using them fail
// with a memory error rather than an unknown-word error. The byte-addressed
// memory model is outside the evaluator's scope.
package forge

func registerMemBuiltins(ip *Interp) {
	for _, name := range []string{"alloc", "free", "read", "write"} {
		word := name
		ip.register(word, func(*Interp) error {
			return errf(ErrMem, "'%s' is not supported by this interpreter", word)
		})
	}
}
