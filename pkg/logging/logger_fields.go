package logging

import "time"

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Error records err under "error"; a nil error is logged as null.
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Pipeline attributes. Keys are stable; log processors filter on them.

func Component(name string) Field { return String("component", name) }

func RunID(id string) Field { return String("run_id", id) }

func Stage(name string) Field { return String("stage", name) }

func Path(p string) Field { return String("path", p) }

func Count(n int) Field { return Int("count", n) }

func Nodes(n int) Field { return Int("nodes", n) }

func Edges(n int) Field { return Int("edges", n) }

func Seed(seed int64) Field { return Field{Key: "seed", Value: seed} }

// Latency records d in milliseconds.
func Latency(d time.Duration) Field {
	return Float64("latency_ms", float64(d.Microseconds())/1000)
}
