package verdict

// ForEach validates each element of a deferred collection and merges the
// per-element Statuses. A panicking or nil supplier, or a nil slice, is
// treated as an empty collection and yields Success (the merge identity).
// The element validator receives the element and its index, so per-element
// keys like "items[2]" can be derived by the caller.
func ForEach[T any](supplier Supplier[[]T], validate func(element T, index int) Status) Status {
	items := resolve(supplier)
	statuses := make([]Status, 0, len(items))
	for i, item := range items {
		statuses = append(statuses, validate(item, i))
	}
	return MergeAll(statuses...)
}
