package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatus_SameAs(t *testing.T) {
	base := Status{State: UnitStateActive, SubState: "running", Enabled: true}

	other := base
	other.UnitFileState = "enabled"
	other.LastTransition = time.Now()
	assert.True(t, base.SameAs(other))

	other.SubState = "reloading"
	assert.False(t, base.SameAs(other))

	other = base
	other.Enabled = false
	assert.False(t, base.SameAs(other))
}

func TestTopic(t *testing.T) {
	assert.Equal(t, "sjw.unit.web", Topic("web"))
	assert.Equal(t, "sjw.unit.web", ChangeRecord{UnitID: "web"}.Topic())

	id, ok := UnitIDFromTopic("sjw.unit.worker@1")
	assert.True(t, ok)
	assert.Equal(t, "worker@1", id)

	_, ok = UnitIDFromTopic("other.web")
	assert.False(t, ok)
}

func TestOperation_Valid(t *testing.T) {
	for _, op := range []Operation{OperationStart, OperationStop, OperationRestart, OperationEnable, OperationDisable} {
		assert.True(t, op.Valid(), op)
	}
	assert.False(t, Operation("reload").Valid())
}

func TestClientToken(t *testing.T) {
	ctx := WithClientToken(context.Background(), "client-1")
	assert.Equal(t, "client-1", ClientToken(ctx))

	generated := ClientToken(context.Background())
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, generated, ClientToken(context.Background()))
}
