// Package service publishes domain events to RabbitMQ.  Errors are logged
// and returned so callers can ignore them without interrupting the request
// that produced the event.
package service

import (
    "context"
    "encoding/json"
    "log"
    "slices"
    "time"

    "github.com/google/uuid"
    amqp "github.com/rabbitmq/amqp091-go"

    "github.com/iliyamo/hotel-room-reservation/internal/model"
    "github.com/iliyamo/hotel-room-reservation/internal/queue"
    "github.com/iliyamo/hotel-room-reservation/internal/room"
)

// Publisher sends events to the broker at URL.  It dials per publish: bookings
// are rare compared to reads, and a short-lived connection never goes stale.
type Publisher struct {
    URL string
}

func NewPublisher(url string) *Publisher { return &Publisher{URL: url} }

// PublishRoomsBooked publishes ev as a persistent JSON message on the
// rooms.booked queue.
func (p *Publisher) PublishRoomsBooked(ctx context.Context, ev queue.RoomsBookedEvent) error {
    body, err := json.Marshal(ev)
    if err != nil {
        log.Printf("rabbitmq: marshal event failed: %v", err)
        return err
    }

    conn, err := amqp.Dial(p.URL)
    if err != nil {
        log.Printf("rabbitmq: dial failed: %v", err)
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Printf("rabbitmq: channel open failed: %v", err)
        return err
    }
    defer func() { _ = ch.Close() }()

    if _, err := ch.QueueDeclare(
        queue.RoomsBookedQueue, // name
        true,                   // durable
        false,                  // autoDelete
        false,                  // exclusive
        false,                  // noWait
        nil,                    // args
    ); err != nil {
        log.Printf("rabbitmq: queue declare failed: %v", err)
        return err
    }

    msgID := ev.BookingID
    if msgID == "" {
        msgID = uuid.NewString()
    }
    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        MessageId:    msgID,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", queue.RoomsBookedQueue, false, false, pub); err != nil {
        log.Printf("rabbitmq: publish failed: %v", err)
        return err
    }
    return nil
}

// RoomsBookedEventFrom builds the event for a committed booking.
func RoomsBookedEventFrom(b model.Booking) queue.RoomsBookedEvent {
    var floors []int
    for _, id := range b.Rooms {
        floors = append(floors, room.FloorOf(id))
    }
    slices.Sort(floors)
    return queue.RoomsBookedEvent{
        BookingID:  b.ID.String(),
        Rooms:      slices.Clone(b.Rooms),
        Floors:     slices.Compact(floors),
        TravelTime: b.TravelTime,
        BookedBy:   b.BookedBy,
        BookedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
    }
}
