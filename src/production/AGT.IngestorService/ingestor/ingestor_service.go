package ingestor

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	config "gitlab.com/unnchai/agro.backend/src/production/AGT.Config"
	"gitlab.com/unnchai/agro.backend/src/production/AGT.IngestorService/client"
	logger "gitlab.com/unnchai/agro.backend/src/production/AGT.Logger"
	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
	api_models "gitlab.com/unnchai/agro.backend/src/production/AGT.Models/api"
)

// queuedReading is one MQTT payload waiting to be forwarded to the API
type queuedReading struct {
	DeviceID string
	Data     agtmodels.SensorData
}

// Ingestor subscribes to station readings over MQTT and forwards them to the
// API service, which remains the single writer to the database.
type Ingestor struct {
	cfg        config.MQTTConfig
	apiClient  *client.APIClient
	mqttClient mqtt.Client
	msgCh      chan queuedReading
	wg         sync.WaitGroup
	logger     *logger.Logger
}

func New(cfg config.MQTTConfig, apiClient *client.APIClient, logger *logger.Logger) *Ingestor {
	return &Ingestor{
		cfg:       cfg,
		apiClient: apiClient,
		msgCh:     make(chan queuedReading, 4096),
		logger:    logger,
	}
}

func (i *Ingestor) Start(ctx context.Context) error {
	opts := mqtt.NewClientOptions().
		AddBroker(i.brokerURL()).
		SetClientID(i.cfg.ClientID).
		SetOrderMatters(false).
		SetKeepAlive(i.cfg.KeepAlive).
		SetPingTimeout(i.cfg.PingTimeout).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetCleanSession(false)

	if i.cfg.BrokerUser != "" {
		opts.SetUsername(i.cfg.BrokerUser)
		opts.SetPassword(i.cfg.BrokerPass)
	}

	if i.cfg.UseTLS {
		tlsCfg, err := i.tlsConfig(i.cfg.CACertPath)
		if err != nil {
			return err
		}
		opts.SetTLSConfig(tlsCfg)
	}

	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		i.logger.Logger.Error().Err(err).Msg("MQTT connection lost")
	}
	opts.OnConnect = func(c mqtt.Client) {
		topic := i.cfg.Topic
		if i.cfg.SharedGroup != "" {
			topic = fmt.Sprintf("$share/%s/%s", i.cfg.SharedGroup, i.cfg.Topic)
		}
		i.logger.Logger.Info().Str("topic", topic).Msg("MQTT connected, subscribing to topic")
		if token := c.Subscribe(topic, 1, i.onMessage); token.Wait() && token.Error() != nil {
			i.logger.Logger.Error().Err(token.Error()).Str("topic", topic).Msg("Failed to subscribe to MQTT topic")
		}
	}

	i.mqttClient = mqtt.NewClient(opts)
	if tk := i.mqttClient.Connect(); tk.Wait() && tk.Error() != nil {
		return tk.Error()
	}

	i.wg.Add(1)
	go func() {
		defer i.wg.Done()
		i.batchWriter(ctx)
	}()

	return nil
}

func (i *Ingestor) Stop() {
	if i.mqttClient != nil && i.mqttClient.IsConnected() {
		i.mqttClient.Disconnect(500)
	}
	close(i.msgCh)
	i.wg.Wait()
}

func (i *Ingestor) IsConnected() bool {
	return i.mqttClient != nil && i.mqttClient.IsConnected()
}

func (i *Ingestor) onMessage(_ mqtt.Client, m mqtt.Message) {
	i.logger.Logger.Debug().Str("topic", m.Topic()).Str("payload", string(m.Payload())).Msg("Received MQTT message")

	reading, err := parseReading(m.Topic(), m.Payload())
	if err != nil {
		i.logger.Logger.Warn().Err(err).Str("topic", m.Topic()).Msg("Dropping unparseable reading")
		return
	}

	i.logger.Logger.Debug().Str("device_id", reading.DeviceID).Msg("Queuing reading")
	i.msgCh <- reading
}

// parseReading extracts the device id from the topic and decodes the sensor
// payload. Expected topic format: stations/<device_id>/readings
func parseReading(topic string, payload []byte) (queuedReading, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "stations" || parts[2] != "readings" || parts[1] == "" {
		return queuedReading{}, fmt.Errorf("invalid topic %q, expected stations/<device_id>/readings", topic)
	}

	var data agtmodels.SensorData
	if err := json.Unmarshal(payload, &data); err != nil {
		return queuedReading{}, fmt.Errorf("invalid reading payload: %w", err)
	}

	return queuedReading{DeviceID: parts[1], Data: data}, nil
}

func (i *Ingestor) batchWriter(ctx context.Context) {
	batch := make([]queuedReading, 0, i.cfg.BatchSize)
	timer := time.NewTimer(i.cfg.BatchWindow)
	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		i.logger.Logger.Info().Int("batch_size", len(batch)).Msg("Forwarding batch to API Service")

		for _, reading := range batch {
			data := reading.Data
			req := api_models.SaveDataRequest{
				DeviceID: reading.DeviceID,
				Data:     &data,
			}
			if err := i.apiClient.SaveReading(ctx, req); err != nil {
				i.logger.Logger.Error().Err(err).Str("device_id", reading.DeviceID).Msg("Error forwarding reading to API")
			}
		}

		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case rd, ok := <-i.msgCh:
			if !ok {
				flush()
				return
			}
			batch = append(batch, rd)
			if len(batch) >= i.cfg.BatchSize {
				flush()
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(i.cfg.BatchWindow)
			}
		case <-timer.C:
			flush()
			timer.Reset(i.cfg.BatchWindow)
		}
	}
}

func (i *Ingestor) brokerURL() string {
	scheme := "tcp"
	if i.cfg.UseTLS {
		scheme = "tcps"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, i.cfg.BrokerHost, i.cfg.BrokerPort)
}

func (i *Ingestor) tlsConfig(caFile string) (*tls.Config, error) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if caFile == "" {
		return cfg, nil
	}
	ca, err := os.ReadFile(caFile)
	if err != nil {
		return nil, err
	}
	cp := x509.NewCertPool()
	if !cp.AppendCertsFromPEM(ca) {
		return nil, fmt.Errorf("bad CA file")
	}
	cfg.RootCAs = cp
	return cfg, nil
}
