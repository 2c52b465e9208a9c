package textcluster

// Split returns s's grapheme clusters as a slice of strings. This is a
// convenience over draining a Cluster forward; for a single pass, prefer
// the iterator to avoid materializing every substring up front.
func Split(s string) []string {
	clusters := New(s)
	out := make([]string, 0, clusters.Count())
	it := clusters.Iterator()
	for it.MoveNext() {
		out = append(out, it.String())
	}
	return out
}
