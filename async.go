package gamebryo

// Create parses path on a worker goroutine and delivers the result to
// completion. completion is invoked with exactly one of (err, nil) or
// (nil, summary); it is always invoked exactly once. Callers that need
// the result back on a specific goroutine (e.g. a single-threaded host
// runtime) are responsible for marshaling out of completion the same
// way they would marshal out of any other background callback.
func Create(path string, quick bool, completion func(error, *Summary)) {
	go func() {
		sum, err := Parse(path, quick)
		if err != nil {
			completion(err, nil)
			return
		}
		completion(nil, sum)
	}()
}
