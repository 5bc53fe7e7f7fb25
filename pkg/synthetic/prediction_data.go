package synthetic

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/policyradar/policyradar-engine/pkg/models"
)

var modelSeed = []struct {
	name        string
	modelType   string
	description string
}{
	{"Policy Change Prediction Model", "CLASSIFICATION", "Predicts likelihood of policy changes"},
	{"Impact Forecasting Model", "REGRESSION", "Forecasts financial impact of policy changes"},
	{"Risk Assessment Model", "CLASSIFICATION", "Assesses regulatory risk levels"},
	{"Time Series Policy Model", "TIME_SERIES", "Time series analysis of policy trends"},
}

// PredictionModels generates the fixed model registry.
func (g *Generator) PredictionModels() []*models.PredictionModel {
	predictionModels := make([]*models.PredictionModel, 0, len(modelSeed))
	for i, seed := range modelSeed {
		model := &models.PredictionModel{
			ModelName:    seed.name,
			ModelType:    seed.modelType,
			ModelVersion: fmt.Sprintf("v1.%d.0", i+1),
			Description:  strPtr(seed.description),

			AccuracyScore: floatPtr(g.uniform(0.75, 0.95)),
			TrainedAt:     timePtr(time.Now().UTC().AddDate(0, 0, -g.intBetween(30, 365))),
			IsActive:      true,
		}
		model.ID = int64(i + 1)
		predictionModels = append(predictionModels, model)
	}
	return predictionModels
}

// PolicyPredictions generates one prediction per policy and model pair.
// These are inert metadata records; the values are sampled, not inferred.
func (g *Generator) PolicyPredictions(policies []*models.Policy, predictionModels []*models.PredictionModel) []*models.PolicyPrediction {
	predictionTypes := []string{"policy_change", "impact_forecast", "risk_assessment", "timeline_prediction"}
	scenarios := []string{"baseline", "optimistic", "pessimistic"}

	var predictions []*models.PolicyPrediction
	for _, policy := range policies {
		for _, model := range predictionModels {
			predictionDate := g.randomDate()
			targetDate := predictionDate.AddDate(0, 0, g.intBetween(30, 365))

			prediction := &models.PolicyPrediction{
				PredictionID: fmt.Sprintf("PRED_%s_%s_%s",
					policy.PolicyNumber,
					strings.ReplaceAll(model.ModelName, " ", "_"),
					uuid.New().String()[:8]),
				PredictionType: g.pick(predictionTypes),

				TargetPolicyID:     intPtr(policy.ID),
				TargetJurisdiction: policy.Jurisdiction,

				PredictionHorizon: intPtr(int64(g.intBetween(3, 24))),
				ConfidenceLevel:   floatPtr(g.uniform(0.6, 0.95)),
				Scenario:          strPtr(g.pick(scenarios)),

				ModelID:      intPtr(model.ID),
				ModelVersion: strPtr(model.ModelVersion),

				PredictedValue:       floatPtr(g.uniform(-100, 100)),
				PredictedProbability: floatPtr(g.uniform(0.1, 0.9)),

				PredictionDate: predictionDate,
				TargetDate:     timePtr(targetDate),

				Status: models.PredictionConfirmed,
			}
			if len(policy.AffectedIndustries) > 0 {
				prediction.TargetIndustry = strPtr(policy.AffectedIndustries[0])
			}

			predictions = append(predictions, prediction)
		}
	}
	return predictions
}
