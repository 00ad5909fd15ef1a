package attached

// Option is a functional option for configuring property declarations.
type Option func(*propertyOptions)

// propertyOptions holds configuration applied during Declare.
type propertyOptions struct {
	transform TransformFunc
}

// WithTransform sets the function that derives the stored value from the
// setter's arguments. The default transform is identity over the first
// argument.
//
// Transforms enable variable-arity setters:
//
//	// boolean flag: setter takes no arguments, always stores true
//	attached.WithTransform(func(args ...any) any { return true })
//
//	// coordinate: setter takes three numbers, stores a struct
//	attached.WithTransform(func(args ...any) any {
//	    return Point3{args[0].(int), args[1].(int), args[2].(int)}
//	})
func WithTransform(fn TransformFunc) Option {
	return func(o *propertyOptions) {
		o.transform = fn
	}
}

// applyOptions applies the given options and returns the resulting config.
func applyOptions(opts []Option) propertyOptions {
	var options propertyOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
