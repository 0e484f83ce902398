package client

import (
	"context"
	"sync"
)

type fakeStore struct {
	mu       sync.Mutex
	token    string
	getErr   error
	clearErr error
	cleared  int
}

func (f *fakeStore) Token(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, f.getErr
}

func (f *fakeStore) SetToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	return nil
}

func (f *fakeStore) ClearToken(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.token = ""
	return nil
}

func (f *fakeStore) current() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}
