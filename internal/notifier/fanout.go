package notifier

import "errors"

// Fanout publishes to every sink. All sinks are attempted; errors are
// joined so a broken bridge never starves the in-process hub.
type Fanout struct {
	sinks []Publisher
}

func NewFanout(sinks ...Publisher) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Publish(room, event string, payload any) error {
	var errs []error
	for _, sink := range f.sinks {
		if err := sink.Publish(room, event, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
