package quiz

// seedProfiles holds the eight type profiles in definition order.
var seedProfiles = []TypeProfile{
	{
		ID:          Commander,
		Name:        "Commander",
		LocalName:   "指揮官型",
		Description: "Excels at setting goals, showing leadership and guiding others.",
		Strengths: []string{
			"Ability to set a clear direction",
			"Fast decision-making",
			"Leadership that inspires others",
		},
		Roles: []string{
			"Project leader",
			"Organisational manager",
			"Strategy planner",
		},
		GrowthPoints: []string{
			"Build the patience to listen to other opinions",
			"Pay closer attention to detail",
			"Develop emotional intelligence",
		},
		FourPillars: "You carry the nature of the heavenly stem Kinoe (甲) and the earthly branch Tora (寅). Wood energy is strong here, " +
			"symbolising growth and expansion. As a Commander you push things forward with force and decisiveness, echoing the pioneering " +
			"spirit of Kinoe-Tora. Your leadership energises those around you like the awakening of spring and leads the organisation toward " +
			"growth. Wood that is too strong can lose flexibility, so drawing on Water (wisdom) and Earth (stability) brings a more balanced leadership.",
		FiveElements: "With the temperament of yang Wood you are full of rising, expanding energy. Wood's continual growth shows in your foresight " +
			"and strength of vision. You embody Wood's virtue of benevolence and bring compassion and fairness to others. Wood is restrained by " +
			"Metal (discipline) and gives birth to Fire (passion): you challenge rigid rules while giving people enthusiasm. Respecting Metal and " +
			"taking in the flexibility of Water keeps you in balance.",
	},
	{
		ID:          Analyzer,
		Name:        "Analyzer",
		LocalName:   "分析者型",
		Description: "Excels at analysing information logically and examining details carefully.",
		Strengths: []string{
			"Logical thinking",
			"Solving complex problems",
			"Data-driven judgement",
		},
		Roles: []string{
			"Data analyst",
			"Research and development",
			"Strategic planner",
		},
		GrowthPoints: []string{
			"Speed up decision-making",
			"Move from theory to practice",
			"Let intuition inform judgement too",
		},
		FourPillars: "You carry the qualities of the heavenly stem Mizunoe (壬) and the earthly branch Ne (子). Water energy is strong, symbolising " +
			"deep wisdom and insight. As an Analyzer you hold the profound intellect and calm judgement of Mizunoe-Ne. Northern Water is inward and " +
			"deep, letting you see the essence of things rather than their surface; your thinking deepens quietly like a winter night. Too much " +
			"Water stagnates, so consciously drawing on Fire (action) and Earth (practicality) helps you move smoothly from analysis to execution.",
		FiveElements: "With the qualities of yang Water you hold the energy of deep wisdom and insight. Water's descending, reflective nature shows in " +
			"your analytical thinking. You embody Water's virtue of wisdom and influence others through intelligence and prudence. Water restrains " +
			"Fire (impulse) and nourishes Wood (creativity): you calm hasty judgement and grow new ideas. Adding Earth (practicality) and the energy " +
			"of Fire (passion) keeps you in balance.",
	},
	{
		ID:          Implementer,
		Name:        "Implementer",
		LocalName:   "実行者型",
		Description: "Excels at turning plans into concrete action and executing them efficiently.",
		Strengths: []string{
			"Practical problem solving",
			"Highly efficient way of working",
			"Drive and execution",
		},
		Roles: []string{
			"Operations manager",
			"Process improvement lead",
			"Project delivery owner",
		},
		GrowthPoints: []string{
			"Cultivate a long-term perspective",
			"Bring in creative thinking",
			"Strengthen strategic planning",
		},
		FourPillars: "You carry the qualities of the heavenly stem Hinoe (丙) and the earthly branch Uma (午). Fire energy is strong, symbolising action " +
			"and passion. As an Implementer you hold the strong will and execution of Hinoe-Uma. Southern Fire rises and spreads, which shows in your " +
			"quick action and decisiveness; like the midsummer sun you breathe life into a project. Too much Fire burns out, so Water (reflection) and " +
			"Metal (discipline) help you sustain your drive.",
		FiveElements: "With the qualities of yang Fire you are full of action and passion. Fire's rising, transforming nature shows in your execution and " +
			"speed of decision. You embody Fire's virtue of propriety and bring vitality and brightness to those around you. Fire melts Metal " +
			"(structure) and produces Earth (stability): you make rigid frameworks fluid and carry things to a new, stable state. Taking in Water " +
			"(reflection) and Wood (planning) keeps you in balance.",
	},
	{
		ID:          Creator,
		Name:        "Creator",
		LocalName:   "創造者型",
		Description: "Excels at generating new ideas and devising innovative solutions.",
		Strengths: []string{
			"Creativity and innovation",
			"Flexible thinking",
			"Adaptability to change",
		},
		Roles: []string{
			"Innovation team",
			"Product development",
			"Creative director",
		},
		GrowthPoints: []string{
			"Strengthen follow-through",
			"Pay closer attention to detail",
			"Improve project management skills",
		},
		FourPillars: "You carry the qualities of the heavenly stem Kinoto (乙) and the earthly branch U (卯), the Wood that bends yet keeps growing. As a " +
			"Creator you hold the flexibility and creativity of Kinoto-U. Eastern yin Wood is supple like a willow yet strong, which shows in your " +
			"inventive ideas and adaptability; your creativity is fresh like a spring breeze. Too much Wood scatters, so Metal (focus) and Earth " +
			"(realism) increase your power to give ideas form.",
		FiveElements: "With the qualities of yin Wood you hold flexible, creative energy. Wood's growth and adaptation show in your innovation and open " +
			"thinking. You embody Wood's benevolence in a gentle form and bring new viewpoints and possibilities. Wood breaks through Earth (convention) " +
			"and nurtures Fire (inspiration): you challenge traditional thinking and generate creative energy. Bringing in Metal (discipline) and " +
			"leaning more on Water (intuition) keeps you in balance.",
	},
	{
		ID:          Coordinator,
		Name:        "Coordinator",
		LocalName:   "調整者型",
		Description: "Excels at fostering cooperation in a team and establishing effective communication.",
		Strengths: []string{
			"Interpersonal skills",
			"Fostering teamwork",
			"Integrating different viewpoints",
		},
		Roles: []string{
			"Team facilitator",
			"Human resources",
			"Customer relationship management",
		},
		GrowthPoints: []string{
			"Strengthen individual decisiveness",
			"Give more direct feedback",
			"Learn project management techniques",
		},
		FourPillars: "You carry the qualities of the heavenly stem Tsuchinoto (己) and the earthly branch Hitsuji (未). Earth energy is strong, symbolising " +
			"harmony and stability. As a Coordinator you hold the harmony and generosity of Tsuchinoto-Hitsuji. Central Earth connects and unites the " +
			"four directions, which shows in how you bind a team together and integrate many viewpoints; you are fruitful like late-summer soil. Too " +
			"much Earth stagnates, so Wood (creativity) and Metal (clarity) make you a more energetic coordinator.",
		FiveElements: "With the qualities of yin Earth you hold the energy of harmony and acceptance. Earth's stabilising, nurturing nature shows in your " +
			"cooperativeness and ability to connect people. You embody Earth's virtue of trust and bring reliability and reassurance. Earth dams Water " +
			"(uncertainty) and nurtures Metal (structure): you settle confusion and grow clear rules. Bringing in Wood (change) and Fire (passion) " +
			"balances innovation with stability.",
	},
	{
		ID:          Stabilizer,
		Name:        "Stabilizer",
		LocalName:   "安定者型",
		Description: "Excels at carrying out work with consistency and reliability and delivering steady results.",
		Strengths: []string{
			"Reliability and consistency",
			"Patience",
			"Solid execution of day-to-day work",
		},
		Roles: []string{
			"Quality control",
			"Financial management",
			"Risk management",
		},
		GrowthPoints: []string{
			"Reduce resistance to change",
			"Increase flexibility",
			"Be more open to new ideas",
		},
		FourPillars: "You carry the qualities of the heavenly stem Tsuchinoe (戊) and the earthly branch Tatsu (辰). Earth energy is strong, symbolising " +
			"stability and endurance. As a Stabilizer you hold the steadiness and patience of Tsuchinoe-Tatsu. Central yang Earth is immovable like a " +
			"mountain, the source of your reliability and consistent action. Too much Earth hardens, so Wood (flexibility) and Water (adaptability) " +
			"keep your stability responsive to change.",
		FiveElements: "With the qualities of yang Earth you hold the energy of stability and steadiness. Earth's supporting, grounding nature shows in your " +
			"reliability and consistent delivery. You embody Earth's virtue of trust with strength and bring certainty to others. Earth restrains Wood " +
			"(change) and produces Metal (precision): you dampen excessive swings and create accurate results. Taking in more Wood (innovation) and " +
			"Water (fluidity) grows the flexibility to keep pace with the times.",
	},
	{
		ID:          Finisher,
		Name:        "Finisher",
		LocalName:   "完遂者型",
		Description: "Holds high quality standards and excels at completing projects with close attention to detail.",
		Strengths: []string{
			"Attention to detail",
			"Strong commitment to quality",
			"Meeting deadlines",
		},
		Roles: []string{
			"Quality assurance specialist",
			"Project completion owner",
			"Editor and proofreader",
		},
		GrowthPoints: []string{
			"Soften perfectionism",
			"Cultivate a big-picture view",
			"Balance efficiency and quality",
		},
		FourPillars: "You carry the qualities of the heavenly stem Kanoe (庚) and the earthly branch Saru (申). Metal energy is strong, symbolising precision " +
			"and perfection. As a Finisher you hold the accuracy and thoroughness of Kanoe-Saru. Western Metal brings the harvest of autumn, which shows " +
			"in your ability to finish projects flawlessly; your work is sharp like a blade, cutting away the unnecessary and leaving the essence. Too " +
			"much Metal becomes rigid, so Fire (creativity) and Wood (growth) let you pursue perfection with flexibility.",
		FiveElements: "With the qualities of yang Metal you hold the energy of precision and completeness. Metal's converging, purifying nature shows in " +
			"your attention to detail and commitment to quality. You embody Metal's virtue of righteousness and bring accuracy to others. Metal controls " +
			"Wood (disorder) and produces Water (wisdom): you remove ambiguity and create precise results. Taking in more Fire (passion) and Earth " +
			"(tolerance) gives you flexibility and perspective.",
	},
	{
		ID:          Catalyst,
		Name:        "Catalyst",
		LocalName:   "触媒型",
		Description: "Excels at driving change and inspiring others.",
		Strengths: []string{
			"Motivating others",
			"Driving change",
			"Enthusiasm and energy",
		},
		Roles: []string{
			"Change manager",
			"Coach or mentor",
			"Sales and marketing lead",
		},
		GrowthPoints: []string{
			"Build long-term follow-up habits",
			"Pay closer attention to detail",
			"Set realistic expectations",
		},
		FourPillars: "You carry the qualities of the heavenly stem Hinoto (丁) and the earthly branch Mi (巳). Fire energy is strong, symbolising passion " +
			"and influence. As a Catalyst you hold the inspiring radiance of Hinoto-Mi. Southern yin Fire lights up its surroundings like a lamp, which " +
			"shows in how you encourage others and prompt change; you energise people like the warm sun of early summer. Too much Fire spends itself, " +
			"so Water (endurance) and Earth (stability) sustain your influence over the long term.",
		FiveElements: "With the qualities of yin Fire you hold the energy that warms and illuminates people. Fire's transforming, enlightening nature shows " +
			"in your ability to influence others and spark change. You embody Fire's virtue of propriety gracefully and bring insight to others. Fire " +
			"is born from Wood (potential) and produces Earth (form): you make latent possibilities visible and give them concrete shape. Taking in " +
			"more Water (depth) and Metal (precision) balances passion with calm and change with continuity.",
	},
}
