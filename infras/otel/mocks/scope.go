package mocks

type scopeImpl struct {
	recorder *Recorder
}

func (s *scopeImpl) AddEvent(_ string) {}

func (s *scopeImpl) End() {}

func (s *scopeImpl) SetAttribute(_ string, _ any) {}

func (s *scopeImpl) SetAttributes(_ map[string]any) {}

func (s *scopeImpl) TraceError(err error) {
	s.recorder.record(err)
}

func (s *scopeImpl) TraceIfError(err error) {
	s.recorder.record(err)
}
