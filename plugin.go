package gelfout

import (
	"context"
)

type OutputPlugin interface {
	Run(context.Context, Event) error
}
