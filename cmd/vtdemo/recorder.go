package main

import "sync"

// sessionRecorder buffers raw PTY output for later replay via "vtdemo dump".
// It implements vtcore.RecordingProvider.
type sessionRecorder struct {
	mu   sync.Mutex
	data []byte
}

func (r *sessionRecorder) Record(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, data...)
}

func (r *sessionRecorder) Data() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out
}

func (r *sessionRecorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = r.data[:0]
}
