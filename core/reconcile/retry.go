package reconcile

// RetryOnce calls op and, if it fails, calls it exactly one more time and
// returns that second outcome. There is no backoff. op must be safe to repeat.
func RetryOnce[T any](op func() (T, error)) (T, error) {
	v, err := op()
	if err == nil {
		return v, nil
	}
	return op()
}

// RetryOnceErr is RetryOnce for operations that only return an error.
func RetryOnceErr(op func() error) error {
	_, err := RetryOnce(func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}
