package queue

import (
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "strconv"
    "strings"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// BookingLogPath is where the consumer appends one line per booking.
var BookingLogPath = filepath.Join("logs", "booking.log")

// StartBookingConsumer connects to the broker at url, declares the durable
// rooms.booked queue and appends every event to BookingLogPath.  It never
// returns: dial failures are retried with exponential backoff capped at 30s
// and a closed delivery channel triggers a reconnect.  Messages that cannot
// be decoded or written are rejected without requeueing.
func StartBookingConsumer(url string) {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Printf("booking-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            time.Sleep(backoff)
            backoff = min(backoff*2, 30*time.Second)
            continue
        }
        backoff = time.Second

        err = consumeLoop(conn)
        _ = conn.Close()
        log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
        time.Sleep(2 * time.Second)
    }
}

func consumeLoop(conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("booking-consumer: set QoS failed: %v", err)
    }
    if _, err := ch.QueueDeclare(RoomsBookedQueue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(RoomsBookedQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for d := range msgs {
        if err := handleMessage(BookingLogPath, d.Body); err != nil {
            log.Printf("booking-consumer: handle message failed: %v", err)
            _ = d.Nack(false, false)
            continue
        }
        _ = d.Ack(false)
    }
    return errors.New("deliveries channel closed")
}

func handleMessage(path string, body []byte) error {
    var ev RoomsBookedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.BookingID == "" || len(ev.Rooms) == 0 {
        return errors.New("event without booking id or rooms")
    }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    if _, err := f.WriteString(formatLine(ev)); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

// formatLine renders ev as a single human-friendly log line.
func formatLine(ev RoomsBookedEvent) string {
    return fmt.Sprintf("[%s] Rooms booked | booking_id=%s | booked_by=%s | rooms=%s | floors=%s | travel_time=%d min\n",
        ev.BookedAt, ev.BookingID, ev.BookedBy, joinInts(ev.Rooms), joinInts(ev.Floors), ev.TravelTime)
}

func joinInts(xs []int) string {
    parts := make([]string, len(xs))
    for i, x := range xs {
        parts[i] = strconv.Itoa(x)
    }
    return "[" + strings.Join(parts, ",") + "]"
}
