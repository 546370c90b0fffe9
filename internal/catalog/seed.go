package catalog

// Built-in teaching cases. A deployment can replace or extend these via
// the cases.yaml overlay; the engine itself never special-cases a
// condition name.
func seedCases() []CaseDefinition {
	return []CaseDefinition{
		{
			Condition: "dengue fever",
			Symptoms:  []string{"high fever", "severe headache", "pain behind the eyes", "muscle and joint pain", "skin rash"},
			Vitals: map[string]string{
				"temperature":    "39.4 C",
				"blood_pressure": "105/70 mmHg",
				"heart_rate":     "102 bpm",
				"resp_rate":      "20 /min",
			},
			Labs: map[string]string{
				"platelets":  "95,000 /uL (low)",
				"hematocrit": "48% (rising)",
				"wbc":        "3,200 /uL (low)",
				"ns1":        "positive",
			},
			ExamFindings: map[string]string{
				"skin":       "diffuse maculopapular rash on trunk",
				"tourniquet": "positive tourniquet test",
				"abdomen":    "mild tenderness, no hepatomegaly",
			},
			Progression: []string{
				"febrile phase: abrupt high fever with headache and myalgia",
				"critical phase: defervescence with plasma leakage and falling platelets",
				"warning signs: abdominal pain, persistent vomiting, mucosal bleeding",
				"recovery phase: fluid reabsorption and platelet rebound",
			},
			LearningObjectives: []string{
				"elicit onset and pattern of fever",
				"screen for dengue warning signs",
				"interpret platelet count and hematocrit trend",
				"counsel on mosquito avoidance",
			},
			CulturalContext: map[string]string{
				"en": "At home we thought it was just the rains changing the weather, so I waited a few days before coming.",
				"sw": "Nyumbani tulidhani ni mabadiliko ya hali ya hewa tu, kwa hiyo nilisubiri siku kadhaa kabla ya kuja.",
			},
		},
		{
			Condition: "malaria",
			Symptoms:  []string{"cyclical fever with chills", "sweating", "headache", "fatigue", "nausea"},
			Vitals: map[string]string{
				"temperature":    "38.9 C",
				"blood_pressure": "110/72 mmHg",
				"heart_rate":     "96 bpm",
				"resp_rate":      "18 /min",
			},
			Labs: map[string]string{
				"blood_smear": "P. falciparum trophozoites seen",
				"hemoglobin":  "10.2 g/dL (low)",
				"rdt":         "positive",
			},
			ExamFindings: map[string]string{
				"abdomen": "palpable spleen tip",
				"skin":    "no rash, mild pallor",
			},
			Progression: []string{
				"prodrome: malaise and low-grade fever",
				"paroxysm: rigors, high fever, drenching sweats",
				"anemia: progressive pallor and fatigue",
				"severe disease: risk of cerebral involvement if untreated",
			},
			LearningObjectives: []string{
				"characterize fever periodicity",
				"ask about travel and mosquito exposure",
				"order and interpret a blood smear",
				"start therapy per severity",
			},
			CulturalContext: map[string]string{
				"en": "I already took some malaria tablets we had left over at home before coming here.",
				"sw": "Tayari nilitumia dawa za malaria zilizobaki nyumbani kabla ya kuja hapa.",
			},
		},
		{
			Condition: "typhoid fever",
			Symptoms:  []string{"stepwise rising fever", "abdominal discomfort", "constipation", "headache", "poor appetite"},
			Vitals: map[string]string{
				"temperature":    "39.1 C",
				"blood_pressure": "108/68 mmHg",
				"heart_rate":     "72 bpm (relative bradycardia)",
				"resp_rate":      "17 /min",
			},
			Labs: map[string]string{
				"blood_culture": "Salmonella typhi pending",
				"wbc":           "4,100 /uL",
				"widal":         "raised O titre",
			},
			ExamFindings: map[string]string{
				"abdomen": "diffuse tenderness, soft",
				"skin":    "scattered rose spots on trunk",
			},
			Progression: []string{
				"first week: stepladder fever and headache",
				"second week: rose spots, abdominal distension",
				"complications: risk of intestinal perforation",
				"convalescence: slow defervescence on therapy",
			},
			LearningObjectives: []string{
				"take a food and water exposure history",
				"recognize relative bradycardia",
				"choose appropriate culture before antibiotics",
				"counsel household contacts on hygiene",
			},
			CulturalContext: map[string]string{
				"en": "We all drink from the same well at home, and nobody boils the water.",
				"sw": "Nyumbani sote tunakunywa maji ya kisima kimoja, na hakuna anayechemsha maji.",
			},
		},
		{
			Condition: "diabetes",
			Symptoms:  []string{"excessive thirst", "frequent urination", "unexplained weight loss", "blurred vision", "tiredness"},
			Vitals: map[string]string{
				"temperature":    "36.8 C",
				"blood_pressure": "128/82 mmHg",
				"heart_rate":     "84 bpm",
				"resp_rate":      "16 /min",
			},
			Labs: map[string]string{
				"fasting_glucose": "212 mg/dL (high)",
				"hba1c":           "9.4% (high)",
				"urine_ketones":   "negative",
			},
			ExamFindings: map[string]string{
				"feet": "reduced monofilament sensation bilaterally",
				"eyes": "early background retinopathy",
			},
			Progression: []string{
				"early: polyuria, polydipsia, weight loss",
				"established: fatigue and recurrent infections",
				"complications: neuropathy and retinopathy emerging",
			},
			LearningObjectives: []string{
				"elicit osmotic symptoms and duration",
				"screen for complications at diagnosis",
				"take a diet and activity history",
				"agree an initial management plan",
			},
			CulturalContext: map[string]string{
				"en": "Our meals at home are mostly ugali and rice, so changing what we eat will be hard for the family.",
				"sw": "Milo yetu nyumbani ni ugali na wali zaidi, kwa hiyo kubadilisha chakula itakuwa vigumu kwa familia.",
			},
		},
		{
			Condition: "hypertension",
			Symptoms:  []string{"often no symptoms", "occasional morning headache", "dizziness"},
			Vitals: map[string]string{
				"temperature":    "36.7 C",
				"blood_pressure": "168/102 mmHg",
				"heart_rate":     "78 bpm",
				"resp_rate":      "15 /min",
			},
			Labs: map[string]string{
				"creatinine": "1.1 mg/dL",
				"potassium":  "4.0 mmol/L",
				"lipids":     "LDL 148 mg/dL (high)",
			},
			ExamFindings: map[string]string{
				"heart": "sustained apex beat, no murmur",
				"eyes":  "grade 1 hypertensive retinopathy",
			},
			Progression: []string{
				"asymptomatic: incidental high readings",
				"target organ strain: LVH and retinal changes",
				"complications: risk of stroke and renal damage",
			},
			LearningObjectives: []string{
				"confirm readings on repeated measurement",
				"ask about salt, alcohol and family history",
				"assess target organ damage",
				"negotiate adherence to lifelong therapy",
			},
			CulturalContext: map[string]string{
				"en": "Honestly, when I feel well I stop taking the tablets; many people here do the same.",
				"sw": "Kusema kweli, ninapojisikia vizuri huacha kumeza dawa; watu wengi hapa hufanya hivyo.",
			},
		},
	}
}

func seedScenarios() []ScenarioDefinition {
	return []ScenarioDefinition{
		{
			ID:              "dengue-ward-01",
			Title:           "Febrile traveller with falling platelets",
			Condition:       "dengue fever",
			Objectives:      []string{"assess hydration status", "identify warning signs", "plan fluid therapy", "decide admission"},
			DurationMinutes: 20,
			Difficulty:      "intermediate",
			Specialty:       "internal medicine",
			PatientProfile:  PatientSummary{Age: 27, Gender: "female", Complaint: "three days of fever and body aches", Background: "returned from a coastal trip last week"},
		},
		{
			ID:              "malaria-er-01",
			Title:           "Drowsy child with high fever",
			Condition:       "malaria",
			Objectives:      []string{"triage severity", "confirm diagnosis by smear", "start antimalarials", "monitor for cerebral signs"},
			DurationMinutes: 15,
			Difficulty:      "advanced",
			Specialty:       "pediatrics",
			PatientProfile:  PatientSummary{Age: 6, Gender: "male", Complaint: "fever and refusing to eat", Background: "lives near standing water, no bed net"},
		},
		{
			ID:              "typhoid-opd-01",
			Title:           "Persistent fever after a family gathering",
			Condition:       "typhoid fever",
			Objectives:      []string{"take exposure history", "order blood cultures", "choose empiric therapy", "advise the household"},
			DurationMinutes: 20,
			Difficulty:      "beginner",
			Specialty:       "internal medicine",
			PatientProfile:  PatientSummary{Age: 34, Gender: "male", Complaint: "ten days of fever and poor appetite", Background: "several relatives unwell after a shared meal"},
		},
		{
			ID:              "htn-clinic-01",
			Title:           "Incidental severe hypertension",
			Condition:       "hypertension",
			Objectives:      []string{"confirm the reading", "screen for organ damage", "start first-line therapy", "plan follow-up"},
			DurationMinutes: 25,
			Difficulty:      "beginner",
			Specialty:       "family medicine",
			PatientProfile:  PatientSummary{Age: 52, Gender: "female", Complaint: "came for a routine check", Background: "mother had a stroke at 60"},
		},
	}
}
