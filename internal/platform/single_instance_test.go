package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardPortIsStableAndInRange(t *testing.T) {
	port := GuardPort("dev.companytime.test")
	assert.Equal(t, port, GuardPort("dev.companytime.test"))
	assert.GreaterOrEqual(t, port, minGuardPort)
	assert.LessOrEqual(t, port, maxGuardPort)
}

func TestAcquireSingleInstance(t *testing.T) {
	appID := "dev.companytime.single-instance-test"
	guard, err := AcquireSingleInstance(appID)
	require.NoError(t, err)
	assert.NotEmpty(t, guard.Address())

	_, err = AcquireSingleInstance(appID)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appID)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}

func TestAppConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AppData", t.TempDir())

	service := NewService()
	base, err := service.GetConfigDir()
	require.NoError(t, err)

	dir, err := service.AppConfigDir("CompanyTime")
	require.NoError(t, err)
	assert.Equal(t, base, dir[:len(base)])
	assert.Contains(t, dir, "CompanyTime")

	_, err = service.AppConfigDir("  ")
	assert.Error(t, err)
}
