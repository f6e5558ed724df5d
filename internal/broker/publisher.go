// Package broker publishes tasks to the downstream work queues. Envelopes
// follow the Celery message protocol so the existing middleware and GDBS
// workers consume them unchanged.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dcu-infosec/phishstory/internal/config"
	"github.com/dcu-infosec/phishstory/internal/monitoring"
)

// Task names consumed by the downstream workers.
const (
	TaskProcess       = "run.process"
	TaskHubstreamSync = "run.hubstream_sync"
)

// TaskPublisher is the engine-facing surface. Publish failures are logged
// and swallowed; a failed enqueue never fails the originating RPC.
type TaskPublisher interface {
	// Process enqueues the incident projection for middleware enrichment.
	Process(ctx context.Context, payload map[string]interface{})
	// HubstreamSync enqueues a ticket id for the GDBS Hubstream sync.
	HubstreamSync(ctx context.Context, ticketID string)
}

// AMQPPublisher sends Celery task envelopes to the middleware and GDBS
// queues over AMQP. In quorum mode the queues are declared with
// x-queue-type=quorum and any of the configured broker nodes may be used.
type AMQPPublisher struct {
	urls            []string
	quorum          bool
	middlewareQueue string
	gdbsQueue       string

	mu      sync.Mutex // amqp channels are not safe for concurrent use
	conn    *amqp.Connection
	channel *amqp.Channel

	logger  *log.Logger
	metrics *monitoring.Metrics
}

// NewAMQPPublisher builds a publisher from config. The connection is
// established lazily on first publish so a broker outage at boot does not
// block the service.
func NewAMQPPublisher(cfg *config.Config, metrics *monitoring.Metrics) *AMQPPublisher {
	urls := cfg.BrokerURLs
	if len(urls) == 0 && cfg.BrokerURL != "" {
		urls = []string{cfg.BrokerURL}
	}
	return &AMQPPublisher{
		urls:            urls,
		quorum:          cfg.QuorumQueue,
		middlewareQueue: cfg.MiddlewareQueue,
		gdbsQueue:       cfg.GDBSQueue,
		logger:          log.New(log.Writer(), "[BROKER] ", log.LstdFlags),
		metrics:         metrics,
	}
}

// Process publishes run.process with the projection as the single
// positional argument.
func (p *AMQPPublisher) Process(ctx context.Context, payload map[string]interface{}) {
	p.send(ctx, TaskProcess, p.middlewareQueue, []interface{}{payload})
}

// HubstreamSync publishes run.hubstream_sync with {ticketId} as the single
// positional argument.
func (p *AMQPPublisher) HubstreamSync(ctx context.Context, ticketID string) {
	p.send(ctx, TaskHubstreamSync, p.gdbsQueue, []interface{}{map[string]interface{}{"ticketId": ticketID}})
}

func (p *AMQPPublisher) send(ctx context.Context, task, queue string, args []interface{}) {
	body, headers, err := buildEnvelope(task, args)
	if err != nil {
		p.logger.Printf("unable to build %s envelope: %v", task, err)
		p.recordFailure(queue)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.ensureChannel()
	if err != nil {
		p.logger.Printf("unable to reach broker for %s: %v", task, err)
		p.recordFailure(queue)
		return
	}

	err = ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:     "application/json",
		ContentEncoding: "utf-8",
		DeliveryMode:    amqp.Persistent,
		CorrelationId:   fmt.Sprint(headers["id"]),
		Headers:         headers,
		Body:            body,
	})
	if err != nil {
		p.logger.Printf("publish of %s to %s failed: %v", task, queue, err)
		p.recordFailure(queue)
		p.reset()
		return
	}
	slog.Debug("task published", "task", task, "queue", queue)
}

func (p *AMQPPublisher) recordFailure(queue string) {
	if p.metrics != nil {
		p.metrics.PublishFailures.WithLabelValues(queue).Inc()
	}
}

// ensureChannel dials the first reachable broker node and declares both
// destination queues. Caller holds p.mu.
func (p *AMQPPublisher) ensureChannel() (*amqp.Channel, error) {
	if p.channel != nil && !p.conn.IsClosed() {
		return p.channel, nil
	}
	p.reset()

	if len(p.urls) == 0 {
		return nil, fmt.Errorf("broker: no broker url configured")
	}

	var lastErr error
	for _, url := range p.urls {
		conn, err := amqp.Dial(url)
		if err != nil {
			lastErr = err
			continue
		}
		ch, err := conn.Channel()
		if err != nil {
			conn.Close()
			lastErr = err
			continue
		}

		var queueArgs amqp.Table
		if p.quorum {
			queueArgs = amqp.Table{"x-queue-type": "quorum"}
		}
		for _, queue := range []string{p.middlewareQueue, p.gdbsQueue} {
			if _, err := ch.QueueDeclare(queue, true, false, false, false, queueArgs); err != nil {
				conn.Close()
				lastErr = fmt.Errorf("declare %s: %w", queue, err)
				ch = nil
				break
			}
		}
		if ch == nil {
			continue
		}

		p.conn = conn
		p.channel = ch
		return ch, nil
	}
	return nil, lastErr
}

func (p *AMQPPublisher) reset() {
	if p.conn != nil {
		p.conn.Close()
	}
	p.conn = nil
	p.channel = nil
}

// Close releases the broker connection.
func (p *AMQPPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

// buildEnvelope assembles a Celery protocol-v2 message: the body is the
// [args, kwargs, embed] triple and the task identity travels in headers.
// Bodies are JSON; the worker fleet accepts json alongside its reply
// serializer.
func buildEnvelope(task string, args []interface{}) ([]byte, amqp.Table, error) {
	body, err := json.Marshal([]interface{}{
		args,
		map[string]interface{}{},
		map[string]interface{}{
			"callbacks": nil,
			"errbacks":  nil,
			"chain":     nil,
			"chord":     nil,
		},
	})
	if err != nil {
		return nil, nil, err
	}

	argsrepr, err := json.Marshal(args)
	if err != nil {
		return nil, nil, err
	}

	id := uuid.NewString()
	headers := amqp.Table{
		"lang":       "py",
		"task":       task,
		"id":         id,
		"root_id":    id,
		"parent_id":  nil,
		"group":      nil,
		"argsrepr":   string(argsrepr),
		"kwargsrepr": "{}",
	}
	return body, headers, nil
}

var _ TaskPublisher = (*AMQPPublisher)(nil)
