package verdict

import "github.com/oarkflow/dipper"

// Path returns a Supplier that pulls a dot-notation path (e.g.
// "customer.address.zip") out of a loosely-typed payload such as a decoded
// JSON or YAML document. A missing path or a value of the wrong type panics
// inside the Supplier, which Field.Run converts into the zero value of T —
// the "value absent" contract.
func Path[T any](payload any, path string) Supplier[T] {
	return func() T {
		v, err := dipper.Get(payload, path)
		if err != nil {
			panic(err)
		}
		return v.(T)
	}
}

// Items is Path for collection-shaped values, for use with ForEach. Elements
// stay untyped; element validators assert what they need and rely on rule
// fallbacks for anything malformed.
func Items(payload any, path string) Supplier[[]any] {
	return func() []any {
		v, err := dipper.Get(payload, path)
		if err != nil {
			panic(err)
		}
		if v == nil {
			return nil
		}
		return v.([]any)
	}
}
