package adb

import (
	"context"
	"errors"
	"testing"

	ps "github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls  []call
	output map[string]string
	fail   map[string]error
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	sub := ""
	for _, a := range args {
		if a == "version" || a == "devices" || a == "push" {
			sub = a
			break
		}
	}
	return []byte(f.output[sub]), f.fail[sub]
}

func newFakeClient(t *testing.T, command string, f *fakeRunner) *Client {
	t.Helper()
	c, err := NewClient(command, WithRunner(f.run))
	require.NoError(t, err)
	return c
}

func TestNewClientSplitsCommand(t *testing.T) {
	c, err := NewClient(`"/opt/android sdk/adb" -H 10.0.0.2`)
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/android sdk/adb", "-H", "10.0.0.2"}, c.Command())

	_, err = NewClient("   ")
	assert.ErrorIs(t, err, ErrNoCommand)

	_, err = NewClient(`"unterminated`)
	assert.Error(t, err)
}

func TestAvailable(t *testing.T) {
	f := &fakeRunner{}
	c := newFakeClient(t, "adb", f)
	assert.True(t, c.Available(context.Background()))
	require.Len(t, f.calls, 1)
	assert.Equal(t, "adb", f.calls[0].name)
	assert.Equal(t, []string{"version"}, f.calls[0].args)

	f.fail = map[string]error{"version": errors.New("exec: \"adb\": executable file not found in $PATH")}
	assert.False(t, c.Available(context.Background()))
}

func TestDevices(t *testing.T) {
	f := &fakeRunner{output: map[string]string{
		"devices": "* daemon not running; starting now at tcp:5037\n" +
			"* daemon started successfully\n" +
			"List of devices attached\n" +
			"HT4A1JT01234\tdevice\n" +
			"emulator-5554\tunauthorized\n\n",
	}}
	c := newFakeClient(t, "adb", f)
	devices, err := c.Devices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Device{
		{Serial: "HT4A1JT01234", State: "device"},
		{Serial: "emulator-5554", State: "unauthorized"},
	}, devices)
	assert.Equal(t, "HT4A1JT01234", devices[0].Label())
	assert.Equal(t, "emulator-5554 (unauthorized)", devices[1].Label())
}

func TestDevicesNoneAttached(t *testing.T) {
	f := &fakeRunner{output: map[string]string{"devices": "List of devices attached\n\n"}}
	devices, err := newFakeClient(t, "adb", f).Devices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestDevicesFailure(t *testing.T) {
	f := &fakeRunner{fail: map[string]error{"devices": errors.New("exit status 1")}}
	_, err := newFakeClient(t, "adb", f).Devices(context.Background())
	assert.Error(t, err)
}

func TestPushTargetsSerial(t *testing.T) {
	f := &fakeRunner{}
	c := newFakeClient(t, "adb -P 5038", f)
	err := c.Push(context.Background(), "HT4A1JT01234", "ace-c-config.json", "/storage/emulated/0/FIRST/ace-c-config.json")
	require.NoError(t, err)
	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{"-P", "5038", "-s", "HT4A1JT01234", "push", "ace-c-config.json", "/storage/emulated/0/FIRST/ace-c-config.json"}, f.calls[0].args)

	f.calls = nil
	require.NoError(t, c.Push(context.Background(), "", "a.json", "/b.json"))
	assert.Equal(t, []string{"-P", "5038", "push", "a.json", "/b.json"}, f.calls[0].args)
}

func TestPushFailureCarriesOutput(t *testing.T) {
	boom := errors.New("exit status 1")
	f := &fakeRunner{
		output: map[string]string{"push": "adb: error: failed to copy 'a.json': remote Permission denied\n"},
		fail:   map[string]error{"push": boom},
	}
	err := newFakeClient(t, "adb", f).Push(context.Background(), "X", "a.json", "/b.json")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Permission denied")
}

type fakeProcess struct{ exe string }

func (p fakeProcess) Pid() int           { return 1 }
func (p fakeProcess) PPid() int          { return 0 }
func (p fakeProcess) Executable() string { return p.exe }

func TestServerRunning(t *testing.T) {
	procs := []ps.Process{fakeProcess{"bash"}, fakeProcess{"adb"}}
	c, err := NewClient("/opt/platform-tools/adb", WithProcessLister(func() ([]ps.Process, error) { return procs, nil }))
	require.NoError(t, err)
	assert.True(t, c.ServerRunning())

	procs = procs[:1]
	assert.False(t, c.ServerRunning())

	failing, err := NewClient("adb", WithProcessLister(func() ([]ps.Process, error) { return nil, errors.New("no /proc") }))
	require.NoError(t, err)
	assert.False(t, failing.ServerRunning())
}
