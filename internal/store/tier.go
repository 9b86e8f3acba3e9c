package store

// Gate supplies the capacity limit for the free tier. Pro entitlement
// means unlimited capacity.
type Gate struct {
	FreeLimit int
}

// Allows reports whether a collection currently holding size items may
// accept one more under the given entitlement.
func (g Gate) Allows(pro bool, size int) bool {
	if pro {
		return true
	}
	return size < g.FreeLimit
}
