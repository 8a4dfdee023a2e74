package logger

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestConcurrency_NoInterleaving verifies that the mutex prevents garbled output
// when many goroutines log simultaneously at different levels.
func TestConcurrency_NoInterleaving(t *testing.T) {
	var stdoutBuf bytes.Buffer
	l := New(WithOutput(&stdoutBuf, &bytes.Buffer{}))
	t.Logf("starting concurrency stress test; this may take some time")

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			for j := range messagesPerGoroutine {
				level := AllLevels()[(id+j)%len(AllLevels())]
				l.Log(level, "worker.go", id, "goroutine-%d-msg-%d-end", id, j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(stdoutBuf.String(), "\n"), "\n")
	if len(lines) != numGoroutines*messagesPerGoroutine {
		t.Fatalf("expected %d log lines, got %d", numGoroutines*messagesPerGoroutine, len(lines))
	}

	pattern := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3} \S*(TRACE|DEBUG|INFO |WARN |ERROR|FATAL)\S* worker\.go:(\d+): goroutine-(\d+)-msg-(\d+)-end$`)
	seen := make(map[string]bool, len(lines))
	for i, line := range lines {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
		if m[2] != m[3] {
			t.Fatalf("line %d mixes two calls: %q", i, line)
		}
		seen[m[3]+"/"+m[4]] = true
	}
	if len(seen) != numGoroutines*messagesPerGoroutine {
		t.Fatalf("expected %d distinct messages, got %d", numGoroutines*messagesPerGoroutine, len(seen))
	}
}

// TestConcurrency_TimestampBeforeLock verifies that the clock is read outside
// the critical section.
func TestConcurrency_TimestampBeforeLock(t *testing.T) {
	var stdoutBuf bytes.Buffer
	release := make(chan struct{})
	entered := make(chan struct{})

	slow := New(WithOutput(&stdoutBuf, &bytes.Buffer{}), WithClock(func() time.Time {
		close(entered)
		<-release
		return time.Now()
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		slow.Log(InfoLevel, "slow.go", 1, "slow")
	}()
	<-entered

	// slow is parked inside its clock; its lock must still be free.
	free := slow.mu.TryLock()
	if free {
		slow.mu.Unlock()
	}
	close(release)
	<-done

	if !free {
		t.Fatal("lock held while reading the clock")
	}
	if !strings.Contains(stdoutBuf.String(), "slow.go:1: slow") {
		t.Fatalf("expected slow line, got: %q", stdoutBuf.String())
	}
}

func BenchmarkLog(b *testing.B) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf, &buf))
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			l.Log(InfoLevel, "bench.go", i, "iteration %d", i)
			i++
			if i%1000 == 0 {
				l.mu.Lock()
				buf.Reset()
				l.mu.Unlock()
			}
		}
	})
}
