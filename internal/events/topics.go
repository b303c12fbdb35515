package events

import (
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// EnsureTopicExists creates the booking events topic if it doesn't already exist
func EnsureTopicExists(brokers []string, topic string) error {
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return err
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", controller.Host)
	if err != nil {
		return err
	}
	defer controllerConn.Close()

	err = controllerConn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		// If error contains "already exists", it's not a problem
		if err.Error() == "kafka server: topic already exists" {
			log.Printf("Topic %s already exists", topic)
			return nil
		}
		return err
	}

	log.Printf("Created topic: %s", topic)

	// Wait a moment for the topic to be fully created
	time.Sleep(1 * time.Second)
	return nil
}
