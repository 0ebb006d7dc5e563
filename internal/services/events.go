package services

// EventPublisher pushes activity events to the message broker.
// Implemented by pkg/rabbitmq.Client; services treat a nil publisher as
// "events disabled" and a publish failure never fails the request.
type EventPublisher interface {
	PublishActivity(event map[string]interface{}) error
}
