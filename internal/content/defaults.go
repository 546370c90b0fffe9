package content

// Built-in narrative table. Entries under condition "*" answer an
// intent/topic for any condition; exact condition entries win. Tokens in
// curly braces are substituted by the responder from session state.
func defaultNarratives() map[Key]map[string]string {
	return map[Key]map[string]string{
		{Condition: "dengue fever", Intent: "history_taking", Topic: "onset"}: {
			"en": "It started about three days ago, doctor. The fever came on very suddenly in the evening, and by night I was shivering and my whole body ached.",
			"sw": "Ilianza kama siku tatu zilizopita, daktari. Homa ilikuja ghafla jioni, na usiku mwili wote ulikuwa unauma na nilikuwa natetemeka.",
		},
		{Condition: "dengue fever", Intent: "symptom_assessment", Topic: "pain"}: {
			"en": "The worst pain is behind my eyes and in my joints. Right now I would say it is about {pain} out of ten.",
			"sw": "Maumivu makubwa ni nyuma ya macho na kwenye viungo. Sasa hivi naweza kusema ni {pain} kati ya kumi.",
		},
		{Condition: "dengue fever", Intent: "symptom_assessment", Topic: "fever"}: {
			"en": "The fever has been very high and it does not really go away, even after I took paracetamol at home.",
			"sw": "Homa imekuwa kali sana na haipungui kabisa, hata baada ya kutumia panadol nyumbani.",
		},
		{Condition: "dengue fever", Intent: "symptom_assessment", Topic: "location"}: {
			"en": "Mostly my head, behind the eyes, and my muscles everywhere. There is also a rash coming up on my chest.",
			"sw": "Hasa kichwani, nyuma ya macho, na misuli kote. Pia kuna vipele vinaanza kutokea kifuani.",
		},
		{Condition: "malaria", Intent: "history_taking", Topic: "onset"}: {
			"en": "It began almost a week ago with tiredness, and then the fevers started coming in waves, with terrible chills and then sweating.",
			"sw": "Ilianza karibu wiki moja iliyopita kwa uchovu, kisha homa zikaanza kuja kwa awamu, na baridi kali halafu jasho jingi.",
		},
		{Condition: "malaria", Intent: "symptom_assessment", Topic: "fever"}: {
			"en": "The fever comes and goes, doctor. First I feel very cold and shake, then I burn hot, and then I sweat through my clothes.",
			"sw": "Homa inakuja na kuondoka, daktari. Kwanza nasikia baridi kali na kutetemeka, kisha joto kali, halafu jasho jingi sana.",
		},
		{Condition: "typhoid fever", Intent: "history_taking", Topic: "onset"}: {
			"en": "It crept up on me over more than a week. Each day the fever seemed a little higher than the day before.",
			"sw": "Ilinijia taratibu kwa zaidi ya wiki moja. Kila siku homa ilionekana kupanda kidogo kuliko jana yake.",
		},
		{Condition: "*", Intent: "history_taking", Topic: "onset"}: {
			"en": "It started {stage}. At first I hoped it would pass on its own, but it has been getting harder to manage.",
			"sw": "Ilianza {stage}. Mwanzoni nilitegemea itapita yenyewe, lakini imezidi kuwa ngumu kuvumilia.",
		},
		{Condition: "*", Intent: "history_taking", Topic: "timing"}: {
			"en": "It has been going on since it first started, and honestly it feels worse as the days pass rather than better.",
			"sw": "Imeendelea tangu ilipoanza, na kusema kweli inazidi kuwa mbaya kadri siku zinavyopita badala ya kupungua.",
		},
		{Condition: "*", Intent: "symptom_assessment", Topic: "pain"}: {
			"en": "The pain is real, doctor. If I had to give it a number, it is about {pain} out of ten right now.",
			"sw": "Maumivu yapo kweli, daktari. Nikipewa namba, ni kama {pain} kati ya kumi kwa sasa.",
		},
		{Condition: "*", Intent: "symptom_assessment", Topic: "fever"}: {
			"en": "I have been feeling hot, especially in the evenings, and sometimes I get chills with it.",
			"sw": "Nimekuwa nikisikia joto, hasa jioni, na mara nyingine baridi pia huambatana nayo.",
		},
		{Condition: "*", Intent: "symptom_assessment", Topic: "location"}: {
			"en": "It is mostly here, where my main complaint is, but some days I feel it spreading to other parts as well.",
			"sw": "Ni hasa hapa kwenye tatizo langu kuu, lakini siku nyingine nahisi linasambaa sehemu nyingine pia.",
		},
		{Condition: "*", Intent: "symptom_assessment", Topic: "urinary"}: {
			"en": "My urine has been darker than usual and I pass less of it. There is no burning though.",
			"sw": "Mkojo wangu umekuwa mweusi kuliko kawaida na unatoka kidogo. Lakini hakuna maumivu ya kuwasha.",
		},
		{Condition: "*", Intent: "family_history", Topic: "family"}: {
			"en": "In my family, {family}. Nobody at home has what I have right now, though.",
			"sw": "Katika familia yangu, {family}. Ila hakuna mtu nyumbani mwenye hali kama yangu kwa sasa.",
		},
		{Condition: "*", Intent: "social_history", Topic: "occupation"}: {
			"en": "I work as a {occupation}. It keeps me busy, and I have missed work since this began.",
			"sw": "Ninafanya kazi ya {occupation}. Inanishughulisha sana, na nimekosa kazi tangu hili lianze.",
		},
		{Condition: "*", Intent: "medication_history", Topic: "allergies"}: {
			"en": "I am not allergic to any medicine that I know of. I only took some tablets from the shop before coming here.",
			"sw": "Sina mzio wa dawa yoyote ninayoijua. Nilitumia tu vidonge kutoka duka la dawa kabla ya kuja hapa.",
		},
		{Condition: "*", Intent: "identity", Topic: "identity"}: {
			"en": "My name is {name}, I am {age} years old, and I live in {location}.",
			"sw": "Jina langu ni {name}, nina umri wa miaka {age}, na ninaishi {location}.",
		},
	}
}

func defaultFixed() map[string]map[string]string {
	return map[string]map[string]string{
		"opening": {
			"en": "Hello doctor. My name is {name}, I am {age} years old and I work as a {occupation}. I came in because of {complaint}.",
			"sw": "Habari daktari. Jina langu ni {name}, nina miaka {age} na ninafanya kazi ya {occupation}. Nimekuja kwa sababu ya {complaint}.",
		},
		"already_told": {
			"en": "I already told you about that, doctor. Is there something else you would like to ask me?",
			"sw": "Nimeshakuambia kuhusu hilo, daktari. Kuna jambo lingine ungependa kuniuliza?",
		},
		"dont_understand": {
			"en": "I am sorry, I do not quite understand the question. Could you ask it in a different way?",
			"sw": "Samahani, sijaelewa vizuri swali lako. Unaweza kuliuliza kwa namna nyingine?",
		},
		"no_active_session": {
			"en": "There is no patient with you at the moment. Start a simulation to begin a new encounter.",
			"sw": "Hakuna mgonjwa aliyepo kwa sasa. Anza mazoezi mapya ili kuanza mahojiano.",
		},
		"session_ended": {
			"en": "The encounter has ended. Thank you, doctor.",
			"sw": "Mahojiano yamekamilika. Asante, daktari.",
		},
		"suffix_emotional": {
			"en": " I am really worried, doctor. Please tell me honestly how serious this is.",
			"sw": " Nina wasiwasi mkubwa, daktari. Tafadhali niambie ukweli, hali yangu ikoje?",
		},
		"suffix_behavioral": {
			"en": " ...sorry, it is hard to concentrate. Could you repeat that slowly?",
			"sw": " ...samahani, ni vigumu kufuatilia. Unaweza kurudia taratibu?",
		},
	}
}
