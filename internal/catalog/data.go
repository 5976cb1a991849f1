package catalog

// Built-in reference data. The lesson text is authored in Korean because the
// app teaches Korean; translations live in the UI string tables, not here.

func builtinGoals() []LearningGoal {
	return []LearningGoal{
		{
			ID:                GoalTOPIK,
			Name:              "TOPIK 시험 준비",
			Description:       "한국어능력시험(TOPIK) 합격을 위한 체계적인 학습",
			TargetLevel:       4,
			EstimatedDuration: "6-12개월",
			Requirements:      []string{"기본 문법", "어휘력", "읽기 실력"},
			Benefits:          []string{"공식 인증", "대학 입학", "취업 기회"},
		},
		{
			ID:                GoalUniversity,
			Name:              "대학 입학 준비",
			Description:       "한국 대학 입학을 위한 학술 한국어 실력 향상",
			TargetLevel:       5,
			EstimatedDuration: "8-15개월",
			Requirements:      []string{"고급 문법", "학술 어휘", "논문 작성"},
			Benefits:          []string{"대학 입학", "장학금", "연구 기회"},
		},
		{
			ID:                GoalCareer,
			Name:              "비즈니스 한국어",
			Description:       "한국 기업에서 일하기 위한 실무 한국어",
			TargetLevel:       4,
			EstimatedDuration: "6-10개월",
			Requirements:      []string{"비즈니스 용어", "회의 참여", "보고서 작성"},
			Benefits:          []string{"취업 기회", "승진", "네트워킹"},
		},
		{
			ID:                GoalMarriage,
			Name:              "가족과의 소통",
			Description:       "한국인 가족과의 원활한 소통을 위한 한국어",
			TargetLevel:       3,
			EstimatedDuration: "4-8개월",
			Requirements:      []string{"가족 호칭", "일상 대화", "문화 이해"},
			Benefits:          []string{"가족 관계", "문화 적응", "정서적 안정"},
		},
		{
			ID:                GoalGeneral,
			Name:              "종합 한국어",
			Description:       "전반적인 한국어 실력 향상과 문화 이해",
			TargetLevel:       3,
			EstimatedDuration: "6-12개월",
			Requirements:      []string{"기본 실력", "문화 지식", "실용적 표현"},
			Benefits:          []string{"일상 소통", "문화 체험", "자신감"},
		},
	}
}

// beginnerBlock is appended for levels 0-2, in this fixed order.
func beginnerBlock() []LessonTemplate {
	return []LessonTemplate{
		{
			ID:            "hangeul-basics",
			Title:         "Hangeul 마스터",
			Description:   "한글 자모음 완전 정복",
			Category:      CategoryVocabulary,
			Difficulty:    1,
			EstimatedTime: 30,
			Prerequisites: []string{},
			Objectives:    []string{"한글 읽기", "한글 쓰기", "기본 발음"},
			Content: LessonContent{
				Vocabulary: []string{"ㄱ", "ㄴ", "ㄷ", "ㄹ", "ㅁ", "ㅂ", "ㅅ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ"},
				Exercises: []Exercise{
					{
						ID:            "ex-hangeul-1",
						Type:          "multiple-choice",
						Question:      "다음 중 자음이 아닌 것은?",
						Options:       []string{"ㄱ", "ㅏ", "ㄴ", "ㄷ"},
						CorrectAnswer: 1,
						Explanation:   "ㅏ는 모음입니다.",
					},
				},
			},
		},
		{
			ID:            "basic-greetings",
			Title:         "기본 인사말",
			Description:   "일상에서 사용하는 한국어 인사",
			Category:      CategoryConversation,
			Difficulty:    1,
			EstimatedTime: 25,
			Prerequisites: []string{"hangeul-basics"},
			Objectives:    []string{"인사 표현", "기본 대화", "예의 표현"},
			Content: LessonContent{
				Vocabulary: []string{"안녕하세요", "안녕히 가세요", "감사합니다", "죄송합니다"},
				ConversationScripts: []ConversationScript{
					{
						ID:           "script-greeting-1",
						Title:        "첫 만남",
						Participants: []string{"A", "B"},
						Lines: []ConversationLine{
							{Speaker: "A", Text: "안녕하세요!", Translation: "Hello!"},
							{Speaker: "B", Text: "안녕하세요!", Translation: "Hello!"},
						},
					},
				},
			},
		},
	}
}

// intermediateBlock is appended for levels 2-4.
func intermediateBlock() []LessonTemplate {
	return []LessonTemplate{
		{
			ID:            "grammar-particles",
			Title:         "문법 패턴 마스터",
			Description:   "중급 한국어 문법 구조 학습",
			Category:      CategoryGrammar,
			Difficulty:    3,
			EstimatedTime: 40,
			Prerequisites: []string{},
			Objectives:    []string{"문법 이해", "문장 구성", "의미 전달"},
			Content: LessonContent{
				Grammar: []string{"-는/은", "-을/를", "-에", "-에서", "-와/과"},
				Exercises: []Exercise{
					{
						ID:            "ex-particles-1",
						Type:          "fill-in-blank",
						Question:      "저는 학생___입니다.",
						Options:       []string{"은", "는", "을", "를"},
						CorrectAnswer: 1,
						Explanation:   "주어 뒤에는 주제를 나타내는 조사 '는'을 사용합니다.",
					},
				},
			},
		},
	}
}

// advancedBlock is appended for levels 4-6.
func advancedBlock() []LessonTemplate {
	return []LessonTemplate{
		{
			ID:            "advanced-nuance",
			Title:         "고급 표현과 뉘앙스",
			Description:   "세밀한 의미 차이와 고급 표현",
			Category:      CategoryCulture,
			Difficulty:    5,
			EstimatedTime: 50,
			Prerequisites: []string{},
			Objectives:    []string{"뉘앙스 이해", "고급 표현", "문화적 맥락"},
			Content: LessonContent{
				CulturalNotes: []string{"한국의 존댓말 문화", "상황별 언어 사용", "감정 표현의 미묘함"},
				Exercises: []Exercise{
					{
						ID:            "ex-nuance-1",
						Type:          "multiple-choice",
						Question:      "상사에게 사용할 수 있는 표현은?",
						Options:       []string{"안녕", "안녕하세요", "안녕하십니까", "안녕히 가세요"},
						CorrectAnswer: 2,
						Explanation:   "상사에게는 가장 정중한 표현인 '안녕하십니까'를 사용합니다.",
					},
				},
			},
		},
	}
}

// builtinGoalBlocks maps each goal to its goal-specific lessons. The general
// goal intentionally has no block: it adds nothing beyond the level bands.
func builtinGoalBlocks() map[GoalID][]LessonTemplate {
	return map[GoalID][]LessonTemplate{
		GoalTOPIK: {
			{
				ID:            "topik-strategy",
				Title:         "TOPIK 시험 전략",
				Description:   "TOPIK 시험 대비 전략과 팁",
				Category:      CategoryReading,
				Difficulty:    3,
				EstimatedTime: 45,
				Prerequisites: []string{},
				Objectives:    []string{"시험 전략", "시간 관리", "문제 유형 파악"},
				Content: LessonContent{
					ReadingText: "TOPIK 시험에서 중요한 것은 시간 관리입니다...",
					Exercises: []Exercise{
						{
							ID:            "ex-topik-1",
							Type:          "multiple-choice",
							Question:      "TOPIK 읽기 영역에서 가장 중요한 것은?",
							Options:       []string{"속도", "정확성", "시간 관리", "어휘력"},
							CorrectAnswer: 2,
							Explanation:   "TOPIK에서는 제한된 시간 내에 많은 문제를 풀어야 하므로 시간 관리가 중요합니다.",
						},
					},
				},
			},
		},
		GoalUniversity: {
			{
				ID:            "university-campus",
				Title:         "대학 생활 한국어",
				Description:   "대학에서 필요한 한국어 표현",
				Category:      CategoryConversation,
				Difficulty:    3,
				EstimatedTime: 35,
				Prerequisites: []string{},
				Objectives:    []string{"수업 참여", "발표 표현", "학술 용어"},
				Content: LessonContent{
					Vocabulary: []string{"강의", "과제", "시험", "발표", "토론"},
					ConversationScripts: []ConversationScript{
						{
							ID:           "script-uni-1",
							Title:        "수업 중 질문",
							Participants: []string{"학생", "교수"},
							Lines: []ConversationLine{
								{Speaker: "학생", Text: "교수님, 질문이 있습니다.", Translation: "Professor, I have a question."},
								{Speaker: "교수", Text: "네, 말씀하세요.", Translation: "Yes, please go ahead."},
							},
						},
					},
				},
			},
		},
		GoalCareer: {
			{
				ID:            "career-business",
				Title:         "비즈니스 한국어",
				Description:   "직장에서 사용하는 한국어",
				Category:      CategoryConversation,
				Difficulty:    4,
				EstimatedTime: 40,
				Prerequisites: []string{},
				Objectives:    []string{"회의 참여", "업무 보고", "고객 응대"},
				Content: LessonContent{
					Vocabulary: []string{"회의", "보고서", "프로젝트", "데드라인", "협력"},
					ConversationScripts: []ConversationScript{
						{
							ID:           "script-career-1",
							Title:        "업무 보고",
							Participants: []string{"직원", "상사"},
							Lines: []ConversationLine{
								{Speaker: "직원", Text: "프로젝트 진행 상황을 보고드리겠습니다.", Translation: "I will report on the project progress."},
								{Speaker: "상사", Text: "네, 계속 말씀하세요.", Translation: "Yes, please continue."},
							},
						},
					},
				},
			},
		},
		GoalMarriage: {
			{
				ID:            "marriage-family",
				Title:         "가족 관계 한국어",
				Description:   "가족과의 소통을 위한 한국어",
				Category:      CategoryCulture,
				Difficulty:    3,
				EstimatedTime: 30,
				Prerequisites: []string{},
				Objectives:    []string{"가족 호칭", "예의 표현", "감정 표현"},
				Content: LessonContent{
					Vocabulary:    []string{"아버지", "어머니", "시부모", "형제자매", "조카"},
					CulturalNotes: []string{"한국의 가족 문화", "호칭의 중요성", "예의와 존경"},
					Exercises: []Exercise{
						{
							ID:            "ex-marriage-1",
							Type:          "multiple-choice",
							Question:      "남편의 어머니를 어떻게 부르나요?",
							Options:       []string{"어머니", "시어머니", "장모님", "시부모님"},
							CorrectAnswer: 1,
							Explanation:   "남편의 어머니는 '시어머니'라고 부릅니다.",
						},
					},
				},
			},
		},
	}
}
