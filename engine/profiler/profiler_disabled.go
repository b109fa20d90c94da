//go:build !profile

package profiler

import "errors"

// No-op versions used when the "profile" build tag is not set.

const Enabled = false

var ErrNoEvents = errors.New("profiler: no events")

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Dump(path string) error { return ErrNoEvents }

func Open() (string, error) { return "", ErrNoEvents }
