package sink

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/chrisns/gcodepulse/internal/machine"
)

const (
	namespace            = "GCodePulse/Run"
	metricTimeoutSeconds = 5
)

// CloudWatchSink publishes each SyncEntry snapshot with its own
// PutMetricData call, enabled only when SMC_ENV=production. Snapshots are
// not batched. Each call dispatches asynchronously
// so a slow or unreachable CloudWatch endpoint never backs up the pipeline.
type CloudWatchSink struct {
	client *cloudwatch.Client
	runID  string
}

// NewCloudWatchSink builds a CloudWatchSink for the given run. When the
// environment is not production, or AWS config cannot be loaded, the sink
// is still returned but silently drains without calling out.
func NewCloudWatchSink(ctx context.Context, runID string) *CloudWatchSink {
	env := os.Getenv("SMC_ENV")
	if env != "production" {
		log.Printf("CloudWatch telemetry: disabled (SMC_ENV=%q)", env)
		return &CloudWatchSink{runID: runID}
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("CloudWatch telemetry: failed to load AWS config: %v", err)
		return &CloudWatchSink{runID: runID}
	}

	log.Printf("CloudWatch telemetry: enabled (namespace: %s)", namespace)
	return &CloudWatchSink{
		client: cloudwatch.NewFromConfig(cfg),
		runID:  runID,
	}
}

// Run implements Sink.
func (s *CloudWatchSink) Run(ctx context.Context, ui <-chan machine.SyncEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, open := <-ui:
			if !open {
				return
			}
			if s.client != nil {
				s.publish(entry)
			}
		}
	}
}

func (s *CloudWatchSink) publish(entry machine.SyncEntry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricTimeoutSeconds*time.Second)
		defer cancel()

		dims := []types.Dimension{{Name: aws.String("RunID"), Value: aws.String(s.runID)}}
		now := aws.Time(time.Now())

		_, err := s.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace: aws.String(namespace),
			MetricData: []types.MetricDatum{
				{MetricName: aws.String("StepsX"), Value: aws.Float64(float64(entry.StepsX)), Unit: types.StandardUnitCount, Timestamp: now, Dimensions: dims},
				{MetricName: aws.String("StepsY"), Value: aws.Float64(float64(entry.StepsY)), Unit: types.StandardUnitCount, Timestamp: now, Dimensions: dims},
				{MetricName: aws.String("StepsZ"), Value: aws.Float64(float64(entry.StepsZ)), Unit: types.StandardUnitCount, Timestamp: now, Dimensions: dims},
				{MetricName: aws.String("StepsE"), Value: aws.Float64(float64(entry.StepsE)), Unit: types.StandardUnitCount, Timestamp: now, Dimensions: dims},
				{MetricName: aws.String("FeedRate"), Value: aws.Float64(entry.Rate), Unit: types.StandardUnitNone, Timestamp: now, Dimensions: dims},
			},
		})
		if err != nil {
			log.Printf("CloudWatch telemetry: PutMetricData failed: %v", err)
		}
	}()
}
