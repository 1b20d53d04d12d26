package output

import (
	"context"

	"github.com/nicwaller/gelfout"
	"github.com/nicwaller/gelfout/gelf"
	"github.com/nicwaller/gelfout/transport"
)

// Gelf builds an output plugin that resolves each event into a GELF
// message and ships it to a Graylog server.
func Gelf(opts GelfOptions) (gelfout.OutputPlugin, error) {
	notifier := opts.Notifier
	if notifier == nil {
		writer, err := transport.NewWriter(opts.Transport)
		if err != nil {
			return nil, err
		}
		notifier = writer
	}
	return &gelfOutput{
		dispatcher: gelf.NewDispatcher(opts.Config, notifier),
	}, nil
}

type GelfOptions struct {
	Config    gelf.Config
	Transport transport.Options

	// Notifier overrides Transport when set. Handy for tests.
	Notifier gelf.Notifier
}

type gelfOutput struct {
	dispatcher *gelf.Dispatcher
}

func (p *gelfOutput) Run(ctx context.Context, event gelfout.Event) error {
	ctx = context.WithValue(ctx, gelfout.ContextKeyPluginType, "output[gelf]")
	// delivery failures were already logged by the dispatcher;
	// returning nil keeps a dead server from stalling the pipeline
	p.dispatcher.Dispatch(ctx, &event)
	return nil
}
