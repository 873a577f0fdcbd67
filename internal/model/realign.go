package model

// Priority is the urgency tier of a realignment recommendation.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank returns the ordering weight of a priority (critical highest).
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Category is the kind of intervention a recommendation proposes.
type Category string

const (
	CategoryConsolidation Category = "consolidation"
	CategoryAutomation    Category = "automation"
	CategoryRestructure   Category = "restructure"
	CategoryInvestment    Category = "investment"
	CategoryElimination   Category = "elimination"
)

// OrganizationalNode is the derived metric set for one organizational
// section. Nodes are rebuilt from scratch on every analysis call.
type OrganizationalNode struct {
	ID                      string   `json:"id" bson:"id"`
	Section                 string   `json:"section" bson:"section"`
	CurrentEfficiency       float64  `json:"currentEfficiency" bson:"currentEfficiency"`             // 0-100
	RedundancyScore         float64  `json:"redundancyScore" bson:"redundancyScore"`                 // 0-100, higher is worse
	AIReadiness             float64  `json:"aiReadiness" bson:"aiReadiness"`                         // 0-100
	Dependencies            []string `json:"dependencies" bson:"dependencies"`                       // static lookup, not data-derived
	RiskLevel               float64  `json:"riskLevel" bson:"riskLevel"`                             // 0-10
	TransformationPotential float64  `json:"transformationPotential" bson:"transformationPotential"` // 0-100
}

// AIOpportunity details the automation opening attached to a high-priority
// automation recommendation.
type AIOpportunity struct {
	AutomationPotential float64  `json:"automationPotential" bson:"automationPotential"`
	ToolsRequired       []string `json:"toolsRequired" bson:"toolsRequired"`
	ImplementationCost  float64  `json:"implementationCost" bson:"implementationCost"`
}

// RealignmentRecommendation is one prioritized improvement action derived
// from a section node.
type RealignmentRecommendation struct {
	Priority                 Priority       `json:"priority" bson:"priority"`
	Category                 Category       `json:"category" bson:"category"`
	Section                  string         `json:"section" bson:"section"`
	Title                    string         `json:"title" bson:"title"`
	Description              string         `json:"description" bson:"description"`
	ImplementationComplexity int            `json:"implementationComplexity" bson:"implementationComplexity"` // 1-10
	ExpectedROI              float64        `json:"expectedROI" bson:"expectedROI"`                           // percentage
	TimeToImplement          int            `json:"timeToImplement" bson:"timeToImplement"`                   // months
	RiskLevel                int            `json:"riskLevel" bson:"riskLevel"`                               // 1-10
	Dependencies             []string       `json:"dependencies" bson:"dependencies"`
	AIOpportunity            *AIOpportunity `json:"aiOpportunity,omitempty" bson:"aiOpportunity,omitempty"`
}

// InsightType classifies an organization-wide optimization insight.
// The structural and risk types are declared for report compatibility but
// are not currently emitted by the analyzer.
type InsightType string

const (
	InsightEfficiency    InsightType = "efficiency"
	InsightRedundancy    InsightType = "redundancy"
	InsightAIOpportunity InsightType = "ai_opportunity"
	InsightStructural    InsightType = "structural"
	InsightRisk          InsightType = "risk"
)

// OptimizationInsight is one organization-wide finding.
type OptimizationInsight struct {
	Type             InsightType `json:"type" bson:"type"`
	Impact           int         `json:"impact" bson:"impact"`         // 1-100
	Confidence       int         `json:"confidence" bson:"confidence"` // 1-100
	Description      string      `json:"description" bson:"description"`
	AffectedSections []string    `json:"affectedSections" bson:"affectedSections"`
}

// TransformationPhase groups same-priority recommendations into one roadmap
// phase.
type TransformationPhase struct {
	Phase           int                         `json:"phase" bson:"phase"`
	Name            string                      `json:"name" bson:"name"`
	Duration        int                         `json:"duration" bson:"duration"` // months
	Recommendations []RealignmentRecommendation `json:"recommendations" bson:"recommendations"`
	ExpectedImpact  string                      `json:"expectedImpact" bson:"expectedImpact"`
}

// AnalysisResult is the full output of one organizational analysis.
// Sections gives the deterministic node ordering; SectionCorrelations is the
// cross-section maturity correlation matrix in that order.
type AnalysisResult struct {
	Recommendations       []RealignmentRecommendation `json:"recommendations" bson:"recommendations"`
	Insights              []OptimizationInsight       `json:"insights" bson:"insights"`
	OrganizationalHealth  float64                     `json:"organizationalHealth" bson:"organizationalHealth"`
	AIReadinessScore      float64                     `json:"aiReadinessScore" bson:"aiReadinessScore"`
	RedundancyIndex       float64                     `json:"redundancyIndex" bson:"redundancyIndex"`
	TransformationRoadmap []TransformationPhase       `json:"transformationRoadmap" bson:"transformationRoadmap"`
	Sections              []string                    `json:"sections" bson:"sections"`
	Nodes                 []OrganizationalNode        `json:"nodes" bson:"nodes"`
	SectionCorrelations   [][]float64                 `json:"sectionCorrelations" bson:"sectionCorrelations"`
}
