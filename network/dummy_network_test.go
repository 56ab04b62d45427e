package network

import (
	"testing"

	"netswitch/errdefs"
	"netswitch/privilege"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDummyLauncher(t *testing.T) {
	t.Run("lists the simulated adapters", func(t *testing.T) {
		manager := NewManager(NewDummyLauncher(), privilege.Static(true), "")

		adapters, err := manager.GetAdapters()
		require.NoError(t, err)
		require.Len(t, adapters, 3)
		assert.Equal(t, TypeEthernet, adapters[0].Type)
		assert.Equal(t, TypeWiFi, adapters[1].Type)
		assert.Equal(t, TypeUnknown, adapters[2].Type)
	})

	t.Run("keeps state across calls", func(t *testing.T) {
		manager := NewManager(NewDummyLauncher(), privilege.Static(true), "")

		require.NoError(t, manager.SwitchToWifi())

		ethernet, err := manager.FindEthernetAdapter()
		require.NoError(t, err)
		wifi, err := manager.FindWifiAdapter()
		require.NoError(t, err)

		assert.Equal(t, StatusDisabled, ethernet.Status)
		assert.Equal(t, StatusUp, wifi.Status)

		require.NoError(t, manager.SwitchToEthernet())

		ethernet, err = manager.FindEthernetAdapter()
		require.NoError(t, err)
		assert.True(t, ethernet.IsEnabled())
	})

	t.Run("fails for unknown adapter names", func(t *testing.T) {
		manager := NewManager(NewDummyLauncher(), privilege.Static(true), "")

		err := manager.EnableAdapter("Ethernet 7")
		require.True(t, errdefs.IsCommandFailed(err))
		assert.Contains(t, err.Error(), "No MSFT_NetAdapter objects found")
	})
}
