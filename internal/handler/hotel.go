package handler

import (
    "context"
    "errors"
    "log"
    "math/rand"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-reservation/internal/allocation"
    "github.com/iliyamo/hotel-room-reservation/internal/hotel"
    "github.com/iliyamo/hotel-room-reservation/internal/middleware"
    "github.com/iliyamo/hotel-room-reservation/internal/model"
    "github.com/iliyamo/hotel-room-reservation/internal/queue"
    "github.com/iliyamo/hotel-room-reservation/internal/room"
    "github.com/iliyamo/hotel-room-reservation/internal/service"
    "github.com/iliyamo/hotel-room-reservation/internal/travel"
)

// EventPublisher receives an event for every committed booking.
type EventPublisher interface {
    PublishRoomsBooked(ctx context.Context, ev queue.RoomsBookedEvent) error
}

// HotelHandler serves room browsing, travel queries, bookings and the
// manager operations on top of one hotel.Store.
type HotelHandler struct {
    Store  *hotel.Store
    Events EventPublisher // optional; nil disables publishing
}

// NewHotelHandler panics if store is nil.  events may be nil.
func NewHotelHandler(store *hotel.Store, events EventPublisher) *HotelHandler {
    if store == nil {
        panic("nil store passed to NewHotelHandler")
    }
    return &HotelHandler{Store: store, Events: events}
}

// ----- DTOs -----

type countReq struct {
    Rooms *float64 `json:"rooms"`
}
type roomIDsReq struct {
    RoomIDs []int `json:"room_ids"`
}
type randomizeReq struct {
    Rate *float64 `json:"rate"`
    Seed *int64   `json:"seed"`
}
type floorView struct {
    Floor     int          `json:"floor"`
    Available int          `json:"available"`
    Rooms     []model.Room `json:"rooms"`
}
type spanResp struct {
    Rooms []int `json:"rooms"`
    Span  int   `json:"span"`
}
type bookingResp struct {
    Booking model.Booking     `json:"booking"`
    Result  allocation.Result `json:"result"`
}

// ----- public reads -----

// ListRooms returns every room, optionally filtered by ?floor= and ?status=.
func (h *HotelHandler) ListRooms(c echo.Context) error {
    st := h.Store.Snapshot()

    rooms := st.Rooms()
    if f := strings.TrimSpace(c.QueryParam("floor")); f != "" {
        floor, err := strconv.Atoi(f)
        if err != nil || room.RoomsOnFloor(floor) == 0 {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid floor"})
        }
        rooms = st.Floor(floor)
    }
    if s := c.QueryParam("status"); s != "" {
        want, err := model.ParseRoomStatus(s)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
        }
        filtered := rooms[:0:0]
        for _, r := range rooms {
            if r.Status == want {
                filtered = append(filtered, r)
            }
        }
        rooms = filtered
    }
    return c.JSON(http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

// GetRoom returns one room by number.
func (h *HotelHandler) GetRoom(c echo.Context) error {
    id, err := room.Parse(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
    }
    r, ok := h.Store.Snapshot().Room(id)
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
    }
    return c.JSON(http.StatusOK, r)
}

// Floors returns the rooms grouped by floor, lowest floor first.
func (h *HotelHandler) Floors(c echo.Context) error {
    st := h.Store.Snapshot()
    out := make([]floorView, 0, len(room.Floors()))
    for _, f := range room.Floors() {
        rooms := st.Floor(f)
        free := 0
        for _, r := range rooms {
            if r.Status == model.StatusAvailable {
                free++
            }
        }
        out = append(out, floorView{Floor: f, Available: free, Rooms: rooms})
    }
    return c.JSON(http.StatusOK, out)
}

// Stats returns occupancy counters.
func (h *HotelHandler) Stats(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Store.Snapshot().Stats())
}

// TravelTime returns the walking time between ?from= and ?to=.
func (h *HotelHandler) TravelTime(c echo.Context) error {
    from, err1 := strconv.Atoi(strings.TrimSpace(c.QueryParam("from")))
    to, err2 := strconv.Atoi(strings.TrimSpace(c.QueryParam("to")))
    if err1 != nil || err2 != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "from and to must be room numbers"})
    }
    res := travel.Between(from, to)
    if !res.Valid {
        return c.JSON(http.StatusBadRequest, res)
    }
    return c.JSON(http.StatusOK, res)
}

// Span returns the travel time between the extremes of ?rooms=101,102,...
func (h *HotelHandler) Span(c echo.Context) error {
    raw := strings.TrimSpace(c.QueryParam("rooms"))
    if raw == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "rooms required"})
    }
    parts := strings.Split(raw, ",")
    ids := make([]int, 0, len(parts))
    for _, p := range parts {
        id, err := room.Parse(p)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number: " + strings.TrimSpace(p)})
        }
        ids = append(ids, id)
    }
    return c.JSON(http.StatusOK, spanResp{Rooms: ids, Span: travel.GroupSpan(ids)})
}

// Preview runs the allocation against the current availability without
// booking anything.
func (h *HotelHandler) Preview(c echo.Context) error {
    var req countReq
    if err := c.Bind(&req); err != nil || req.Rooms == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "rooms required"})
    }
    res := allocation.AllocateNumber(*req.Rooms, h.Store.Snapshot().AvailableIDs())
    if !res.Success {
        return c.JSON(http.StatusUnprocessableEntity, res)
    }
    return c.JSON(http.StatusOK, res)
}

// ----- staff -----

// Book allocates and books rooms for the authenticated staff member and
// publishes a RoomsBookedEvent.  Publishing failures are logged only.
func (h *HotelHandler) Book(c echo.Context) error {
    var req countReq
    if err := c.Bind(&req); err != nil || req.Rooms == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "rooms required"})
    }
    id, ok := middleware.CurrentUser(c)
    if !ok {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    b, res := h.Store.Book(hotel.BookRequest{Rooms: *req.Rooms, BookedBy: id.Subject()})
    if !res.Success {
        return c.JSON(http.StatusUnprocessableEntity, res)
    }

    if h.Events != nil {
        ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), 5*time.Second)
        defer cancel()
        if err := h.Events.PublishRoomsBooked(ctx, service.RoomsBookedEventFrom(b)); err != nil {
            log.Printf("booking %s: publish rooms.booked failed: %v", b.ID, err)
        }
    }
    return c.JSON(http.StatusCreated, bookingResp{Booking: b, Result: res})
}

// ListBookings returns every booking made since the last reset.
func (h *HotelHandler) ListBookings(c echo.Context) error {
    bs := h.Store.Snapshot().Bookings()
    return c.JSON(http.StatusOK, echo.Map{"bookings": bs, "count": len(bs)})
}

// CheckIn moves booked rooms to occupied.
func (h *HotelHandler) CheckIn(c echo.Context) error {
    return h.transition(c, h.Store.CheckIn)
}

// CheckOut frees booked or occupied rooms.
func (h *HotelHandler) CheckOut(c echo.Context) error {
    return h.transition(c, h.Store.CheckOut)
}

func (h *HotelHandler) transition(c echo.Context, apply func([]int) error) error {
    var req roomIDsReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := apply(req.RoomIDs); err != nil {
        return c.JSON(transitionStatus(err), echo.Map{"error": err.Error()})
    }
    st := h.Store.Snapshot()
    rooms := make([]model.Room, 0, len(req.RoomIDs))
    seen := make(map[int]bool, len(req.RoomIDs))
    for _, id := range req.RoomIDs {
        if r, ok := st.Room(id); ok && !seen[id] {
            seen[id] = true
            rooms = append(rooms, r)
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"rooms": rooms})
}

func transitionStatus(err error) int {
    switch {
    case errors.Is(err, hotel.ErrInvalidTransition):
        return http.StatusConflict
    case errors.Is(err, hotel.ErrUnknownRoom):
        return http.StatusNotFound
    default:
        return http.StatusBadRequest
    }
}

// ----- manager -----

// Randomize occupies available rooms at random.  A fixed seed makes the
// outcome reproducible.
func (h *HotelHandler) Randomize(c echo.Context) error {
    var req randomizeReq
    if err := c.Bind(&req); err != nil || req.Rate == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "rate required"})
    }
    seed := time.Now().UnixNano()
    if req.Seed != nil {
        seed = *req.Seed
    }
    if err := h.Store.Randomize(rand.New(rand.NewSource(seed)), *req.Rate); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, h.Store.Snapshot().Stats())
}

// Reset makes every room available and drops all bookings.
func (h *HotelHandler) Reset(c echo.Context) error {
    h.Store.Reset()
    return c.JSON(http.StatusOK, h.Store.Snapshot().Stats())
}
