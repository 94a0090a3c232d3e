package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchStatusIsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, DispatchStatusSent.IsTerminal())
	assert.True(t, DispatchStatusRejected.IsTerminal())
	assert.False(t, DispatchStatusPending.IsTerminal())
	assert.False(t, DispatchStatusApproved.IsTerminal())
}

func TestDeliveryChannel(t *testing.T) {
	t.Parallel()

	assert.True(t, ChannelBoth.IncludesPush())
	assert.True(t, ChannelBoth.IncludesInApp())
	assert.True(t, ChannelPush.IncludesPush())
	assert.False(t, ChannelPush.IncludesInApp())
	assert.False(t, ChannelInApp.IncludesPush())
}

func TestTargetGroupsKinds(t *testing.T) {
	t.Parallel()

	assert.Empty(t, TargetGroups{}.Kinds())
	assert.False(t, TargetGroups{}.Any())

	all := TargetGroups{Organizations: true, Businesses: true, Individuals: true}
	assert.Equal(t, []AccountKind{AccountKindOrganization, AccountKindBusiness, AccountKindIndividual}, all.Kinds())
}

func TestAccountAddressLine(t *testing.T) {
	t.Parallel()

	account := &Account{Street: "123 Main St", City: " Springfield ", Zip: "62704"}
	assert.Equal(t, "123 Main St, Springfield, 62704", account.AddressLine())

	assert.Empty(t, (&Account{}).AddressLine())
	assert.Empty(t, (&Account{Street: "   "}).AddressLine())
}
