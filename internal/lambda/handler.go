package lambda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/viper"

	"github.com/stahnma/gh-repo-search/internal/config"
	"github.com/stahnma/gh-repo-search/internal/finder"
	ghub "github.com/stahnma/gh-repo-search/internal/github"
	"github.com/stahnma/gh-repo-search/internal/query"
)

// Event carries the search inputs. Empty fields take the input defaults.
type Event struct {
	Owner     string `json:"owner"`
	Topics    string `json:"topics"`
	Operator  string `json:"operator"`
	MatrixUse *bool  `json:"matrix_use"`
	Format    string `json:"format"`
	Delimiter string `json:"delimiter"`
}

// Inputs returns the event as search inputs with defaults applied.
func (e Event) Inputs() (query.Inputs, error) {
	v := viper.New()
	config.SetDefaults(v)
	for key, val := range map[string]string{
		config.KeyOwner:     e.Owner,
		config.KeyTopics:    e.Topics,
		config.KeyOperator:  e.Operator,
		config.KeyFormat:    e.Format,
		config.KeyDelimiter: e.Delimiter,
	} {
		if val != "" {
			v.Set(key, val)
		}
	}
	if e.MatrixUse != nil {
		v.Set(config.KeyMatrixUse, strconv.FormatBool(*e.MatrixUse))
	}
	return config.LoadInputs(v)
}

// ObjectPutter is the part of the S3 client used to upload results.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Handler runs a search per invocation and optionally uploads the result
// document to S3.
type Handler struct {
	Config    config.Config
	Client    ghub.Client
	NewPutter func(ctx context.Context) (ObjectPutter, error)
	Now       func() time.Time
}

// NewHandler returns a Lambda handler function backed by client.
func NewHandler(cfg config.Config, client ghub.Client) func(context.Context, Event) (finder.Document, error) {
	h := &Handler{
		Config: cfg,
		Client: client,
		NewPutter: func(ctx context.Context) (ObjectPutter, error) {
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
			if err != nil {
				return nil, fmt.Errorf("failed to load AWS config: %w", err)
			}
			return s3.NewFromConfig(awsCfg), nil
		},
		Now: time.Now,
	}
	return h.Handle
}

// Handle runs the search described by event.
func (h *Handler) Handle(ctx context.Context, event Event) (finder.Document, error) {
	in, err := event.Inputs()
	if err != nil {
		return finder.Document{}, err
	}
	if (h.Config.S3Bucket == "") != (h.Config.S3ObjectKey == "") {
		return finder.Document{}, fmt.Errorf("S3_BUCKET_NAME and S3_OBJECT_KEY environment variables must both be set")
	}
	upload := h.Config.S3Bucket != ""

	res, err := finder.Run(ctx, h.Client, in, finder.LoggerFunc(log.Printf))
	if err != nil {
		return finder.Document{}, err
	}
	doc := res.Document()

	if !upload {
		return doc, nil
	}
	if err := h.upload(ctx, doc); err != nil {
		return finder.Document{}, err
	}
	return doc, nil
}

func (h *Handler) upload(ctx context.Context, doc finder.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	key := h.Config.S3ObjectKey
	if strings.Contains(key, "%s") {
		key = fmt.Sprintf(key, h.Now().Format("2006-Jan-02"))
	}

	svc, err := h.NewPutter(ctx)
	if err != nil {
		return err
	}
	_, err = svc.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(h.Config.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload result to S3: %w", err)
	}
	log.Printf("Uploaded result to s3://%s/%s", h.Config.S3Bucket, key)
	return nil
}
