package events

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/cliente360-api/internal/application/panel"
)

var _ panel.EventPublisher = (*Producer)(nil)

// Producer publica los eventos del panel en Kafka. Las publicaciones son
// best-effort: los errores se registran y no se propagan al caso de uso.
type Producer struct {
	panelWriter   *kafka.Writer
	messageWriter *kafka.Writer
}

// NewProducer construye el productor con un writer por tópico.
func NewProducer(brokers []string, panelTopic, messageTopic string) *Producer {
	return &Producer{
		panelWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    panelTopic,
			Balancer: &kafka.LeastBytes{},
		},
		messageWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    messageTopic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PanelEvaluated publica el evento de evaluación; la clave es el customer_id
// para que los eventos de un mismo cliente mantengan el orden de partición.
func (p *Producer) PanelEvaluated(ctx context.Context, ev panel.PanelEvaluatedEvent) {
	p.publish(ctx, p.panelWriter, ev.CustomerID, ev)
}

// MessageDrafted publica el evento de borrador generado.
func (p *Producer) MessageDrafted(ctx context.Context, ev panel.MessageDraftedEvent) {
	p.publish(ctx, p.messageWriter, ev.CustomerID, ev)
}

func (p *Producer) publish(ctx context.Context, w *kafka.Writer, key string, ev any) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Str("topic", w.Topic).Msg("serializar evento")
		return
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}
	if err := w.WriteMessages(ctx, msg); err != nil {
		log.Warn().Err(err).Str("topic", w.Topic).Str("key", key).Msg("publicar evento Kafka")
		return
	}
	log.Debug().Str("topic", w.Topic).Str("key", key).Msg("evento publicado")
}

// Close cierra los writers.
func (p *Producer) Close() error {
	if err := p.panelWriter.Close(); err != nil {
		return err
	}
	return p.messageWriter.Close()
}
