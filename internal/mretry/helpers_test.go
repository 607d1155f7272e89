package mretry

import (
	"context"
	"errors"
)

var errTransient = errors.New("transient failure")

func contextBackground() context.Context { return context.Background() }
