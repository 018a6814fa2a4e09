//go:build linux || darwin

package platform

import (
	"os"
	"runtime"
	"testing"

	"golang.org/x/sys/unix"
)

func isolateCache(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "linux" {
		t.Setenv("XDG_CACHE_HOME", t.TempDir())
	} else {
		t.Setenv("HOME", t.TempDir())
	}
}

func TestAcquireSingleInstance(t *testing.T) {
	isolateCache(t)

	const name = "ztdesktop.test.instance"

	release, ok := AcquireSingleInstance(name)
	if !ok {
		t.Fatal("first AcquireSingleInstance() failed")
	}

	if !IsSingleInstanceRunning(name) {
		t.Error("IsSingleInstanceRunning() = false while the lock is held")
	}

	if _, ok := AcquireSingleInstance(name); ok {
		t.Error("second AcquireSingleInstance() succeeded while the lock is held")
	}

	release()

	if IsSingleInstanceRunning(name) {
		t.Error("IsSingleInstanceRunning() = true after release")
	}
	if _, err := os.Stat(lockPath(name)); err != nil {
		t.Errorf("lock file removed after release: %v", err)
	}

	release, ok = AcquireSingleInstance(name)
	if !ok {
		t.Fatal("AcquireSingleInstance() after release failed")
	}
	release()
}

// A process that opened the lock file before the holder released it must
// contend on the same file as any later process.
func TestAcquireSingleInstanceAfterReleaseRace(t *testing.T) {
	isolateCache(t)

	const name = "ztdesktop.test.race"

	releaseA, ok := AcquireSingleInstance(name)
	if !ok {
		t.Fatal("AcquireSingleInstance() for the first holder failed")
	}

	waiter, err := os.OpenFile(lockPath(name), os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("opening lock file: %v", err)
	}
	defer waiter.Close()

	releaseA()

	if err := unix.Flock(int(waiter.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		t.Fatalf("waiter could not lock after release: %v", err)
	}

	if releaseC, ok := AcquireSingleInstance(name); ok {
		releaseC()
		t.Fatal("AcquireSingleInstance() succeeded while the waiter holds the lock")
	}
	if !IsSingleInstanceRunning(name) {
		t.Error("IsSingleInstanceRunning() = false while the waiter holds the lock")
	}

	unix.Flock(int(waiter.Fd()), unix.LOCK_UN)
}
