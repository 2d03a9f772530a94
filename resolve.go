package abicall

// Resolution is the outcome of overload resolution for one method name.
type Resolution struct {
	// ABI holds every candidate sharing the name, in declaration order.
	ABI []Fragment

	// Signatures holds the candidates whose human-readable signatures are
	// reported: the single arity match when there is exactly one, all
	// candidates otherwise.
	Signatures []Fragment
}

// Resolve selects the ABI subset reported for a call to an overloaded name.
//
// Resolution is by arity only and never fails. The full candidate set is
// always kept in ABI so downstream encoders can do type-based selection;
// arity mismatches are left to them as well.
func Resolve(candidates []Fragment, argCount int) Resolution {
	res := Resolution{ABI: cloneFragments(candidates)}

	if len(candidates) == 1 {
		res.Signatures = res.ABI[:1:1]
		return res
	}

	match := -1
	for i, c := range candidates {
		if len(c.Inputs) != argCount {
			continue
		}
		if match >= 0 {
			match = -1
			break
		}
		match = i
	}

	if match >= 0 {
		res.Signatures = []Fragment{res.ABI[match]}
	} else {
		res.Signatures = res.ABI
	}
	return res
}
