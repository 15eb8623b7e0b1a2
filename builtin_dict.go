// builtin_dict.go
//
// Dict construction and the dict_* word family. Keys are strings and
// insertion order is preserved; dict_keys/dict_values/dict_items return
// fresh lists so callers cannot mutate the dict through them.
package forge

func registerDictBuiltins(ip *Interp) {
	ip.register("dict", builtinDict)
	ip.register("dict_keys", builtinDictKeys)
	ip.register("dict_values", builtinDictValues)
	ip.register("dict_items", builtinDictItems)
	ip.register("dict_get", builtinDictGet)
	ip.register("dict_set", builtinDictSet)
	ip.register("dict_pop", builtinDictPop)
}

// builtinDict pops a pair count, then that many key/value pairs. Pairs were
// pushed key-first, so each value sits above its key.
func builtinDict(ip *Interp) error {
	n, err := ip.popInt("'dict' expects an integer count of key-value pairs")
	if err != nil {
		return err
	}
	if n < 0 {
		return errf(ErrType, "'dict' count must be non-negative")
	}
	if err := ip.need(int(2*n), "dict"); err != nil {
		return err
	}
	// Pop pairs into stack-push order first so insertion order matches the
	// order the program pushed the keys.
	pairs := make([]Value, 2*n)
	for i := int(2*n) - 1; i >= 0; i-- {
		pairs[i], _ = ip.pop()
	}
	d := NewDict()
	do := d.dict()
	for i := 0; i < len(pairs); i += 2 {
		k := pairs[i]
		if k.Tag != VTStr {
			return errf(ErrType, "dict keys must be strings, got %s", k.Tag)
		}
		do.Set(k.Data.(string), pairs[i+1])
	}
	ip.push(d)
	return nil
}

func builtinDictKeys(ip *Interp) error {
	do, err := ip.popDict("dict_keys")
	if err != nil {
		return err
	}
	out := make([]Value, 0, do.Len())
	for _, k := range do.Keys {
		out = append(out, Str(k))
	}
	ip.push(NewList(out))
	return nil
}

func builtinDictValues(ip *Interp) error {
	do, err := ip.popDict("dict_values")
	if err != nil {
		return err
	}
	out := make([]Value, 0, do.Len())
	for _, k := range do.Keys {
		out = append(out, do.Entries[k])
	}
	ip.push(NewList(out))
	return nil
}

// builtinDictItems pushes a list of (key, value) tuples in insertion order.
func builtinDictItems(ip *Interp) error {
	do, err := ip.popDict("dict_items")
	if err != nil {
		return err
	}
	out := make([]Value, 0, do.Len())
	for _, k := range do.Keys {
		out = append(out, Tuple([]Value{Str(k), do.Entries[k]}))
	}
	ip.push(NewList(out))
	return nil
}

// builtinDictGet pushes none for a missing key.
func builtinDictGet(ip *Interp) error {
	key, err := ip.popStr("dict_get")
	if err != nil {
		return err
	}
	do, err := ip.popDict("dict_get")
	if err != nil {
		return err
	}
	v, ok := do.Get(key)
	if !ok {
		ip.push(None)
		return nil
	}
	ip.push(v)
	return nil
}

func builtinDictSet(ip *Interp) error {
	v, err := ip.pop()
	if err != nil {
		return err
	}
	key, err := ip.popStr("dict_set")
	if err != nil {
		return err
	}
	do, err := ip.popDict("dict_set")
	if err != nil {
		return err
	}
	do.Set(key, v)
	return nil
}

// builtinDictPop fails on a missing key, unlike dict_get.
func builtinDictPop(ip *Interp) error {
	key, err := ip.popStr("dict_pop")
	if err != nil {
		return err
	}
	do, err := ip.popDict("dict_pop")
	if err != nil {
		return err
	}
	v, ok := do.Pop(key)
	if !ok {
		return errf(ErrIndex, "dict_pop: key %q not found", key)
	}
	ip.push(v)
	return nil
}
