package assessment

// Catalog returns the standard eight-dimension readiness catalog.
// Weights sum to 1.0.
func Catalog() []Dimension {
	return []Dimension{
		{
			Key:    "strategic_alignment",
			Name:   "Strategic alignment",
			Weight: 0.15,
			Guide: map[int]string{
				1: "No clear connection between AI and business strategy",
				2: "Some AI projects exist but limited strategic alignment",
				3: "AI initiatives generally support business objectives",
				4: "AI is integral to achieving strategic goals",
				5: "AI drives competitive advantage and strategic differentiation",
			},
		},
		{
			Key:    "leadership_commitment",
			Name:   "Leadership commitment",
			Weight: 0.15,
			Guide: map[int]string{
				1: "Limited awareness or interest from leadership",
				2: "Some leadership interest but inconsistent support",
				3: "Moderate leadership support with allocated resources",
				4: "Strong leadership commitment with clear accountability",
				5: "Leadership champions AI transformation organization-wide",
			},
		},
		{
			Key:    "data_maturity",
			Name:   "Data maturity",
			Weight: 0.15,
			Guide: map[int]string{
				1: "Data is siloed with poor quality and governance",
				2: "Basic data management with some quality issues",
				3: "Structured data governance with moderate quality",
				4: "Advanced data management with high quality standards",
				5: "Best-in-class data platform enabling AI at scale",
			},
		},
		{
			Key:    "technical_infrastructure",
			Name:   "Technical infrastructure",
			Weight: 0.12,
			Guide: map[int]string{
				1: "Legacy systems with no AI-ready infrastructure",
				2: "Some modern systems but limited AI capabilities",
				3: "Adequate infrastructure with some AI tools",
				4: "Modern infrastructure well-suited for AI deployment",
				5: "Cloud-native, scalable AI-optimized infrastructure",
			},
		},
		{
			Key:    "talent_capabilities",
			Name:   "Talent capabilities",
			Weight: 0.13,
			Guide: map[int]string{
				1: "No dedicated AI talent or skills",
				2: "Limited AI skills scattered across teams",
				3: "Some AI expertise with basic capabilities",
				4: "Strong AI team with proven track record",
				5: "World-class AI talent driving innovation",
			},
		},
		{
			Key:    "organizational_culture",
			Name:   "Organizational culture",
			Weight: 0.12,
			Guide: map[int]string{
				1: "Resistance to change and new technologies",
				2: "Cautious approach with some cultural barriers",
				3: "Generally open to AI with moderate enthusiasm",
				4: "Embraces AI with strong innovation culture",
				5: "AI-first mindset embedded in organizational DNA",
			},
		},
		{
			Key:    "change_management",
			Name:   "Change management",
			Weight: 0.10,
			Guide: map[int]string{
				1: "No formal change management processes",
				2: "Basic change management with limited success",
				3: "Structured change management with moderate results",
				4: "Advanced change management with high success rates",
				5: "Exceptional change management enabling rapid transformation",
			},
		},
		{
			Key:    "governance_ethics",
			Name:   "Governance & ethics",
			Weight: 0.08,
			Guide: map[int]string{
				1: "No AI governance or ethics considerations",
				2: "Basic awareness but no formal frameworks",
				3: "Initial governance structures with some policies",
				4: "Comprehensive governance with clear ethics guidelines",
				5: "Leading-edge responsible AI governance and ethics",
			},
		},
	}
}

// CatalogByKey indexes the standard catalog by dimension key.
func CatalogByKey() map[string]Dimension {
	dims := Catalog()
	m := make(map[string]Dimension, len(dims))
	for _, d := range dims {
		m[d.Key] = d
	}
	return m
}
