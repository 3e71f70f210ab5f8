package scoring

// insightEntry holds the canned strengths, gaps, and recommendations for one
// dimension at one maturity tier.
type insightEntry struct {
	strengths       []string
	gaps            []string
	recommendations []string
}

// dimensionInsights returns dimension-specific strengths, gaps, and
// recommendations for the observed maturity. Tiers collapse the five levels
// into low (Nascent/Emerging), mid (Developing), and high (Advanced/Optimizing).
func dimensionInsights(key string, m Maturity) (strengths, gaps, recommendations []string) {
	tiers, ok := insightLibrary[key]
	if !ok {
		return nil, []string{"Assessment needed"}, []string{"Conduct detailed evaluation"}
	}

	var entry insightEntry
	switch {
	case m <= MaturityEmerging:
		entry = tiers.low
	case m == MaturityDeveloping:
		entry = tiers.mid
	default:
		entry = tiers.high
	}
	return entry.strengths, entry.gaps, entry.recommendations
}

type insightTiers struct {
	low, mid, high insightEntry
}

var insightLibrary = map[string]insightTiers{
	"strategic_alignment": {
		low: insightEntry{
			gaps:            []string{"No clear AI strategy", "AI work disconnected from business goals"},
			recommendations: []string{"Develop an AI vision statement", "Align AI initiatives with business strategy"},
		},
		mid: insightEntry{
			strengths:       []string{"Basic strategic framework in place"},
			gaps:            []string{"Limited strategic integration"},
			recommendations: []string{"Deepen strategy integration", "Define success metrics per initiative"},
		},
		high: insightEntry{
			strengths:       []string{"Strong strategic alignment", "AI contributes to competitive positioning"},
			recommendations: []string{"Expand competitive advantage", "Share strategy practices across units"},
		},
	},
	"leadership_commitment": {
		low: insightEntry{
			gaps:            []string{"Inconsistent executive sponsorship", "No accountable transformation owner"},
			recommendations: []string{"Appoint an executive sponsor", "Establish a transformation steering committee"},
		},
		mid: insightEntry{
			strengths:       []string{"Leadership allocates resources to AI work"},
			gaps:            []string{"Sponsorship not yet organization-wide"},
			recommendations: []string{"Set leadership accountability targets", "Brief the full executive team quarterly"},
		},
		high: insightEntry{
			strengths:       []string{"Leadership champions the transformation"},
			recommendations: []string{"Develop the next generation of AI leaders"},
		},
	},
	"data_maturity": {
		low: insightEntry{
			gaps:            []string{"Siloed data with poor quality", "No data governance function"},
			recommendations: []string{"Stand up a data governance board", "Run a data quality baseline audit"},
		},
		mid: insightEntry{
			strengths:       []string{"Structured data governance exists"},
			gaps:            []string{"Quality uneven across domains"},
			recommendations: []string{"Extend governance to remaining domains", "Automate quality monitoring"},
		},
		high: insightEntry{
			strengths:       []string{"High-quality data platform", "Data products reused across teams"},
			recommendations: []string{"Publish golden datasets for AI teams"},
		},
	},
	"technical_infrastructure": {
		low: insightEntry{
			gaps:            []string{"Legacy systems block AI workloads"},
			recommendations: []string{"Assess cloud migration options", "Pilot managed AI infrastructure"},
		},
		mid: insightEntry{
			strengths:       []string{"Adequate infrastructure with some AI tooling"},
			gaps:            []string{"Scaling limits for production workloads"},
			recommendations: []string{"Harden the model deployment path", "Introduce capacity planning for AI workloads"},
		},
		high: insightEntry{
			strengths:       []string{"Modern infrastructure suited to AI deployment"},
			recommendations: []string{"Optimize infrastructure cost per workload"},
		},
	},
	"talent_capabilities": {
		low: insightEntry{
			gaps:            []string{"No dedicated AI talent", "Skills scattered without mentoring structure"},
			recommendations: []string{"Launch a skills development program", "Hire a seed AI team"},
		},
		mid: insightEntry{
			strengths:       []string{"Core AI expertise established"},
			gaps:            []string{"Capability concentrated in few teams"},
			recommendations: []string{"Create internal AI guilds", "Rotate practitioners through business units"},
		},
		high: insightEntry{
			strengths:       []string{"Strong AI team with delivery track record"},
			recommendations: []string{"Invest in retention and advanced training"},
		},
	},
	"organizational_culture": {
		low: insightEntry{
			gaps:            []string{"Resistance to new ways of working"},
			recommendations: []string{"Run awareness and demystification sessions", "Celebrate early adopter wins"},
		},
		mid: insightEntry{
			strengths:       []string{"General openness to AI adoption"},
			gaps:            []string{"Enthusiasm varies by department"},
			recommendations: []string{"Build a champions network", "Embed AI goals in team objectives"},
		},
		high: insightEntry{
			strengths:       []string{"Innovation culture embraces AI"},
			recommendations: []string{"Channel grassroots ideas into the portfolio"},
		},
	},
	"change_management": {
		low: insightEntry{
			gaps:            []string{"No formal change management process"},
			recommendations: []string{"Adopt a change management framework", "Train change agents in each unit"},
		},
		mid: insightEntry{
			strengths:       []string{"Structured change process with moderate results"},
			gaps:            []string{"Adoption tracking is manual"},
			recommendations: []string{"Instrument adoption metrics", "Shorten feedback loops with staff"},
		},
		high: insightEntry{
			strengths:       []string{"Change management enables rapid rollouts"},
			recommendations: []string{"Template the playbook for future programs"},
		},
	},
	"governance_ethics": {
		low: insightEntry{
			gaps:            []string{"No AI governance or ethics framework"},
			recommendations: []string{"Draft responsible AI principles", "Set up model review checkpoints"},
		},
		mid: insightEntry{
			strengths:       []string{"Initial governance structures in place"},
			gaps:            []string{"Policies not yet enforced consistently"},
			recommendations: []string{"Operationalize policy enforcement", "Add ethics review to the delivery gate"},
		},
		high: insightEntry{
			strengths:       []string{"Comprehensive governance with clear guidelines"},
			recommendations: []string{"Benchmark against emerging regulation"},
		},
	},
}

// strategicDimensions get high priority as soon as maturity slips.
var strategicDimensions = map[string]bool{
	"strategic_alignment":   true,
	"leadership_commitment": true,
	"data_maturity":         true,
}

// dimensionPriority rates improvement urgency for a dimension.
func dimensionPriority(key string, m Maturity) Priority {
	switch {
	case strategicDimensions[key] && m <= MaturityEmerging:
		return PriorityHigh
	case m <= MaturityNascent:
		return PriorityHigh
	case m <= MaturityDeveloping:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
