package rlrep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameCarriesActorLifecycleEvents(t *testing.T) {
	f := Frame{
		Time:  1.5,
		Delta: 0.05,
		NewActors: []NewActor{
			{ActorID: 1, ObjectID: 42},
		},
		UpdatedActors: []UpdatedAttribute{
			{ActorID: 1, StreamID: 3, ObjectID: 42},
		},
		DeletedActors: []ActorId{2},
	}

	assert.Len(t, f.NewActors, 1)
	assert.Equal(t, ActorId(1), f.NewActors[0].ActorID)
	assert.Len(t, f.UpdatedActors, 1)
	assert.Equal(t, ActorId(2), f.DeletedActors[0])
}

func TestTrajectoryOptionalFields(t *testing.T) {
	tr := Trajectory{}
	assert.Nil(t, tr.Location)
	assert.Nil(t, tr.Rotation)
}
