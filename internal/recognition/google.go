package recognition

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv2"
	"cloud.google.com/go/speech/apiv2/speechpb"
	"google.golang.org/api/option"
)

const phraseBoost = 20.0

// GoogleClient implements Recognizer against the Google Speech-to-Text v2
// API using the project's default recognizer.
type GoogleClient struct {
	client     *speech.Client
	recognizer string
}

// NewGoogleClient connects to the regional Speech endpoint. The endpoint
// must match the recognizer location, so non-global regions use their
// region-prefixed host.
func NewGoogleClient(ctx context.Context, projectID, region string, opts ...option.ClientOption) (*GoogleClient, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("recognition: project id required")
	}
	region = strings.TrimSpace(region)
	if region == "" {
		region = "global"
	}

	endpoint := "speech.googleapis.com:443"
	if region != "global" {
		endpoint = region + "-speech.googleapis.com:443"
	}
	opts = append([]option.ClientOption{option.WithEndpoint(endpoint)}, opts...)

	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("recognition: create speech client: %w", err)
	}
	return &GoogleClient{
		client:     client,
		recognizer: fmt.Sprintf("projects/%s/locations/%s/recognizers/_", projectID, region),
	}, nil
}

// Close releases the underlying gRPC connection.
func (g *GoogleClient) Close() error {
	return g.client.Close()
}

// Recognize sends one chunk of raw audio and returns the top alternative's
// transcript and word timings, relative to the chunk start.
func (g *GoogleClient) Recognize(ctx context.Context, audio []byte, cfg Config) (Result, error) {
	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Recognizer: g.recognizer,
		Config:     buildConfig(cfg),
		AudioSource: &speechpb.RecognizeRequest_Content{
			Content: audio,
		},
	})
	if err != nil {
		return Result{}, err
	}
	return parseResponse(resp), nil
}

func buildConfig(cfg Config) *speechpb.RecognitionConfig {
	out := &speechpb.RecognitionConfig{
		DecodingConfig: &speechpb.RecognitionConfig_AutoDecodingConfig{
			AutoDecodingConfig: &speechpb.AutoDetectDecodingConfig{},
		},
		Model:         cfg.Model,
		LanguageCodes: []string{cfg.Language},
		Features: &speechpb.RecognitionFeatures{
			EnableWordTimeOffsets:      true,
			EnableAutomaticPunctuation: cfg.Punctuation,
		},
	}

	if len(cfg.PhraseHints) > 0 {
		phrases := make([]*speechpb.PhraseSet_Phrase, 0, len(cfg.PhraseHints))
		for _, hint := range cfg.PhraseHints {
			hint = strings.TrimSpace(hint)
			if hint == "" {
				continue
			}
			phrases = append(phrases, &speechpb.PhraseSet_Phrase{Value: hint, Boost: phraseBoost})
		}
		if len(phrases) > 0 {
			out.Adaptation = &speechpb.SpeechAdaptation{
				PhraseSets: []*speechpb.SpeechAdaptation_AdaptationPhraseSet{
					{
						Value: &speechpb.SpeechAdaptation_AdaptationPhraseSet_InlinePhraseSet{
							InlinePhraseSet: &speechpb.PhraseSet{Phrases: phrases},
						},
					},
				},
			}
		}
	}

	return out
}

func parseResponse(resp *speechpb.RecognizeResponse) Result {
	var (
		lines []string
		words []Word
	)
	for _, res := range resp.GetResults() {
		alts := res.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		// Word timestamps are only populated on the top alternative.
		top := alts[0]
		if transcript := strings.TrimSpace(top.GetTranscript()); transcript != "" {
			lines = append(lines, transcript)
		}
		for _, info := range top.GetWords() {
			words = append(words, Word{
				Text:  info.GetWord(),
				Start: info.GetStartOffset().AsDuration().Seconds(),
				End:   info.GetEndOffset().AsDuration().Seconds(),
			})
		}
	}
	return Result{Transcript: strings.Join(lines, "\n"), Words: words}
}
