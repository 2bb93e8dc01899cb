package model_test

import (
    "encoding/json"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/hotel-room-reservation/internal/model"
)

func TestRoomStatus_String(t *testing.T) {
    assert.Equal(t, "available", model.StatusAvailable.String())
    assert.Equal(t, "booked", model.StatusBooked.String())
    assert.Equal(t, "occupied", model.StatusOccupied.String())
    assert.Equal(t, "RoomStatus(9)", model.RoomStatus(9).String())
}

func TestParseRoomStatus(t *testing.T) {
    for _, s := range model.RoomStatuses {
        got, err := model.ParseRoomStatus(" " + s.String() + " ")
        require.NoError(t, err)
        assert.Equal(t, s, got)
    }
    got, err := model.ParseRoomStatus("BOOKED")
    require.NoError(t, err)
    assert.Equal(t, model.StatusBooked, got)

    _, err = model.ParseRoomStatus("cleaning")
    assert.Error(t, err)
}

func TestRoom_JSON(t *testing.T) {
    b, err := json.Marshal(model.Room{ID: 305, Floor: 3, Position: 5, Status: model.StatusOccupied})
    require.NoError(t, err)
    assert.JSONEq(t, `{"id":305,"floor":3,"position":5,"status":"occupied"}`, string(b))

    var r model.Room
    require.NoError(t, json.Unmarshal([]byte(`{"id":101,"floor":1,"position":1,"status":"booked"}`), &r))
    assert.Equal(t, model.StatusBooked, r.Status)

    assert.Error(t, json.Unmarshal([]byte(`{"status":"gone"}`), &r))

    _, err = json.Marshal(model.Room{Status: model.RoomStatus(7)})
    assert.Error(t, err)
}
