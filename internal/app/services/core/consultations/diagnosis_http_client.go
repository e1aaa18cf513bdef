package consultations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"pulseflow-service/internal/app/config"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/dto/responses"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	diagnosisHttpClientInstance contracts.DiagnosisClient
	onceDiagnosisHttpClient     sync.Once
)

type diagnosisHttpClient struct {
	BaseUrl         string
	FallbackEnabled bool
	Client          *http.Client
	Log             *zap.Logger
}

func NewDiagnosisHttpClient(cfg config.AppDiagnosis, logger *zap.Logger) contracts.DiagnosisClient {
	onceDiagnosisHttpClient.Do(func() {
		client := &diagnosisHttpClient{
			BaseUrl:         cfg.BaseUrl,
			FallbackEnabled: cfg.FallbackEnabled,
			Client: &http.Client{
				Timeout: time.Duration(cfg.RequestTimeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
		diagnosisHttpClientInstance = client
	})
	return diagnosisHttpClientInstance
}

func (c *diagnosisHttpClient) SuggestDiagnoses(ctx context.Context, clinicalContext *requests.DiagnosisContext) (*responses.DiagnosisSuggestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("diagnosisHttpClient.SuggestDiagnoses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	suggestion, err := c.callRemote(ctx, clinicalContext)
	if err == nil {
		return suggestion, nil
	}

	c.Log.Warn("diagnosisHttpClient.SuggestDiagnoses remote call failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)

	if !c.FallbackEnabled {
		return nil, err
	}
	return ruleBasedSuggestion(clinicalContext), nil
}

func (c *diagnosisHttpClient) callRemote(ctx context.Context, clinicalContext *requests.DiagnosisContext) (*responses.DiagnosisSuggestion, error) {
	requestJSON, err := json.Marshal(clinicalContext)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, fmt.Errorf("diagnosis collaborator returned status %d", resp.StatusCode)
	}

	suggestion := new(responses.DiagnosisSuggestion)
	if err := json.Unmarshal(bodyBytes, suggestion); err != nil {
		return nil, err
	}
	return suggestion, nil
}

// complaintRules back the offline fallback. Matching is keyword based and
// deliberately simple; the remote collaborator is the real engine.
var complaintRules = []struct {
	Keyword   string
	Diagnosis models.Diagnosis
}{
	{
		Keyword: "fever",
		Diagnosis: models.Diagnosis{
			Name:        "Viral fever",
			Probability: 0.6,
			Code:        "R50.9",
			Workup:      []string{"CBC", "Peripheral smear"},
			Summary:     "Self-limiting febrile illness, likely viral.",
		},
	},
	{
		Keyword: "cough",
		Diagnosis: models.Diagnosis{
			Name:        "Acute bronchitis",
			Probability: 0.5,
			Code:        "J20.9",
			Workup:      []string{"Chest X-ray", "SpO2 monitoring"},
			Summary:     "Lower respiratory tract inflammation with productive cough.",
		},
	},
	{
		Keyword: "headache",
		Diagnosis: models.Diagnosis{
			Name:        "Tension headache",
			Probability: 0.5,
			Code:        "G44.2",
			Workup:      []string{"Blood pressure review"},
			Summary:     "Bilateral pressing headache without neurological signs.",
		},
	},
	{
		Keyword: "abdominal",
		Diagnosis: models.Diagnosis{
			Name:        "Acute gastritis",
			Probability: 0.45,
			Code:        "K29.7",
			Workup:      []string{"Ultrasound abdomen", "H. pylori test"},
			Summary:     "Epigastric discomfort aggravated by meals.",
		},
	},
	{
		Keyword: "throat",
		Diagnosis: models.Diagnosis{
			Name:        "Acute pharyngitis",
			Probability: 0.5,
			Code:        "J02.9",
			Workup:      []string{"Throat swab"},
			Summary:     "Sore throat with odynophagia, likely infective.",
		},
	},
	{
		Keyword: "diarrhea",
		Diagnosis: models.Diagnosis{
			Name:        "Acute gastroenteritis",
			Probability: 0.55,
			Code:        "A09",
			Workup:      []string{"Stool routine", "Hydration assessment"},
			Summary:     "Loose stools with possible infective etiology.",
		},
	},
}

func ruleBasedSuggestion(clinicalContext *requests.DiagnosisContext) *responses.DiagnosisSuggestion {
	haystack := strings.ToLower(clinicalContext.Complaints + " " + clinicalContext.History + " " + clinicalContext.Notes)

	var diagnoses []models.Diagnosis
	for _, rule := range complaintRules {
		if strings.Contains(haystack, rule.Keyword) {
			diagnoses = append(diagnoses, rule.Diagnosis)
		}
		if len(diagnoses) == 5 {
			break
		}
	}
	if len(diagnoses) == 0 {
		diagnoses = append(diagnoses, models.Diagnosis{
			Name:        "Undifferentiated illness",
			Probability: 0.3,
			Code:        "R69",
			Workup:      []string{"CBC", "Vitals recheck"},
			Summary:     "No rule matched the recorded complaints; clinical correlation required.",
		})
	}

	return &responses.DiagnosisSuggestion{
		Diagnoses: diagnoses,
		Draft: responses.PrescriptionDraft{
			Medications: []models.MedicationLine{},
			Advice:      []string{"Adequate hydration", "Review if symptoms worsen"},
			FollowUp:    "3 days",
			WorkupNotes: map[string]string{},
		},
	}
}
