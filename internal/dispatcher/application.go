package dispatcher

func cmdQ(c *ctx) (bool, error) {
	if err := forbidSelection(c); err != nil {
		return false, err
	}
	if !c.Ed.History.Saved() {
		return false, wrap(CategoryState, ErrUnsavedChanges)
	}
	return true, nil
}

func cmdQUpper(c *ctx) (bool, error) {
	if err := forbidSelection(c); err != nil {
		return false, err
	}
	return true, nil
}
