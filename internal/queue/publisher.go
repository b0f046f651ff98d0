package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReservationCreatedQueue 預約事件的佇列名稱
const ReservationCreatedQueue = "reservation.created"

// Publisher 發布領域事件，失敗由呼叫端決定是否忽略
// 測試時可替換為 FakePublisher
type Publisher interface {
	PublishReservationCreated(ctx context.Context, ev ReservationCreatedEvent) error
	Close() error
}

type amqpPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher 建立 RabbitMQ 連線並宣告佇列 (durable, idempotent)
func NewAMQPPublisher(url string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(
		ReservationCreatedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &amqpPublisher{conn: conn, ch: ch}, nil
}

// PublishReservationCreated 以 JSON 發布事件，訊息標記為 persistent
func (p *amqpPublisher) PublishReservationCreated(ctx context.Context, ev ReservationCreatedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx,
		"",                      // default exchange
		ReservationCreatedQueue, // routing key = queue name
		false,                   // mandatory
		false,                   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

func (p *amqpPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

type FakePublisher struct {
	PublishFn func(ctx context.Context, ev ReservationCreatedEvent) error
	CloseFn   func() error
}

// PublishReservationCreated 執行 Fake 設定或 panic
func (f *FakePublisher) PublishReservationCreated(ctx context.Context, ev ReservationCreatedEvent) error {
	if f.PublishFn != nil {
		return f.PublishFn(ctx, ev)
	}
	panic("unexpected PublishReservationCreated")
}

// Close 執行 Fake 設定或 no-op
func (f *FakePublisher) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
