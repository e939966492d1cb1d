package insighting

import "errors"

var (
	ErrSampleTooLarge   = errors.New("insight sample size is larger than the pool")
	ErrInvalidInsightNo = errors.New("insight sample size must be positive")
)
