package catalog

// Premium category ids in catalog-declared order.
const (
	CategoryOpenness              = "openness"
	CategoryConscientiousness     = "conscientiousness"
	CategoryExtraversion          = "extraversion"
	CategoryAgreeableness         = "agreeableness"
	CategoryNeuroticism           = "neuroticism"
	CategoryEmotionalIntelligence = "emotional_intelligence"
	CategoryLeadership            = "leadership"
	CategoryResilience            = "resilience"
	CategoryDecisionMaking        = "decision_making"
	CategoryInnovation            = "innovation"
)

var premiumCategories = []Category{
	{ID: CategoryOpenness, Name: "Openness to Experience", Description: "Reflects curiosity, creativity, and willingness to try new experiences."},
	{ID: CategoryConscientiousness, Name: "Conscientiousness", Description: "Measures organization, discipline, and goal-oriented behavior."},
	{ID: CategoryExtraversion, Name: "Extraversion", Description: "Indicates energy from social interaction and outgoing behavior."},
	{ID: CategoryAgreeableness, Name: "Agreeableness", Description: "Reflects cooperation, trust, and concern for others."},
	{ID: CategoryNeuroticism, Name: "Emotional Stability", Description: "Measures emotional stability and stress management."},
	{ID: CategoryEmotionalIntelligence, Name: "Emotional Intelligence", Description: "Ability to understand and manage emotions in self and others."},
	{ID: CategoryLeadership, Name: "Leadership & Influence", Description: "Capacity to guide, motivate, and influence others effectively."},
	{ID: CategoryResilience, Name: "Resilience & Adaptability", Description: "Ability to bounce back from setbacks and adapt to change."},
	{ID: CategoryDecisionMaking, Name: "Decision Making & Risk", Description: "Effectiveness in making decisions and managing risk."},
	{ID: CategoryInnovation, Name: "Innovation & Creativity", Description: "Capacity for creative thinking and innovative problem-solving."},
}

var premiumQuestions = []Question{
	// openness
	{ID: 1, Category: CategoryOpenness, Text: "I enjoy exploring abstract concepts and philosophical ideas."},
	{ID: 2, Category: CategoryOpenness, Text: "I am always curious about learning how things work."},
	{ID: 3, Category: CategoryOpenness, Text: "I appreciate art, music, and creative expressions."},
	{ID: 4, Category: CategoryOpenness, Text: "I prefer routine and predictable environments.", Reverse: true},
	{ID: 5, Category: CategoryOpenness, Text: "I enjoy trying new foods and experiencing different cultures."},
	{ID: 6, Category: CategoryOpenness, Text: "I often come up with creative solutions to problems."},
	{ID: 7, Category: CategoryOpenness, Text: "I find imaginative and fantasy stories boring.", Reverse: true},
	{ID: 8, Category: CategoryOpenness, Text: "I seek out intellectual challenges and complex problems."},

	// conscientiousness
	{ID: 9, Category: CategoryConscientiousness, Text: "I always complete tasks I start, even when they become difficult."},
	{ID: 10, Category: CategoryConscientiousness, Text: "I plan my work schedule carefully and stick to it."},
	{ID: 11, Category: CategoryConscientiousness, Text: "I often procrastinate on important tasks.", Reverse: true},
	{ID: 12, Category: CategoryConscientiousness, Text: "I pay attention to details and avoid making careless mistakes."},
	{ID: 13, Category: CategoryConscientiousness, Text: "I am reliable and others can count on me to follow through."},
	{ID: 14, Category: CategoryConscientiousness, Text: "I prefer to work spontaneously rather than follow a plan.", Reverse: true},
	{ID: 15, Category: CategoryConscientiousness, Text: "I set high standards for myself and work hard to achieve them."},
	{ID: 16, Category: CategoryConscientiousness, Text: "I keep my workspace and belongings well-organized."},
	{ID: 17, Category: CategoryConscientiousness, Text: "I often leave tasks unfinished.", Reverse: true},
	{ID: 18, Category: CategoryConscientiousness, Text: "I am disciplined and can resist temptations that interfere with my goals."},

	// extraversion
	{ID: 19, Category: CategoryExtraversion, Text: "I feel energized when I am around other people."},
	{ID: 20, Category: CategoryExtraversion, Text: "I enjoy being the center of attention in social gatherings."},
	{ID: 21, Category: CategoryExtraversion, Text: "I prefer working alone rather than in groups.", Reverse: true},
	{ID: 22, Category: CategoryExtraversion, Text: "I am talkative and enjoy engaging in conversations."},
	{ID: 23, Category: CategoryExtraversion, Text: "I feel comfortable approaching strangers."},
	{ID: 24, Category: CategoryExtraversion, Text: "I prefer quiet, low-key social activities.", Reverse: true},
	{ID: 25, Category: CategoryExtraversion, Text: "I actively seek out leadership opportunities."},
	{ID: 26, Category: CategoryExtraversion, Text: "I enjoy lively, stimulating environments."},
	{ID: 27, Category: CategoryExtraversion, Text: "I am reserved and quiet in most social situations.", Reverse: true},
	{ID: 28, Category: CategoryExtraversion, Text: "I find it easy to make new friends."},

	// agreeableness
	{ID: 29, Category: CategoryAgreeableness, Text: "I trust people and believe they have good intentions."},
	{ID: 30, Category: CategoryAgreeableness, Text: "I am generous and willing to help others even when it costs me."},
	{ID: 31, Category: CategoryAgreeableness, Text: "I often find myself in arguments with others.", Reverse: true},
	{ID: 32, Category: CategoryAgreeableness, Text: "I am sympathetic and concerned about others' feelings."},
	{ID: 33, Category: CategoryAgreeableness, Text: "I prefer to compete rather than cooperate.", Reverse: true},
	{ID: 34, Category: CategoryAgreeableness, Text: "I forgive others easily and don't hold grudges."},
	{ID: 35, Category: CategoryAgreeableness, Text: "I am suspicious of others' motives.", Reverse: true},
	{ID: 36, Category: CategoryAgreeableness, Text: "I enjoy working collaboratively to achieve common goals."},

	// neuroticism
	{ID: 37, Category: CategoryNeuroticism, Text: "I often feel anxious and worried about future events."},
	{ID: 38, Category: CategoryNeuroticism, Text: "I remain calm and composed under pressure.", Reverse: true},
	{ID: 39, Category: CategoryNeuroticism, Text: "My mood changes frequently throughout the day."},
	{ID: 40, Category: CategoryNeuroticism, Text: "I recover quickly from stressful situations.", Reverse: true},
	{ID: 41, Category: CategoryNeuroticism, Text: "I often feel overwhelmed by daily responsibilities."},
	{ID: 42, Category: CategoryNeuroticism, Text: "I am generally optimistic about the future.", Reverse: true},
	{ID: 43, Category: CategoryNeuroticism, Text: "I tend to worry about things that might go wrong."},
	{ID: 44, Category: CategoryNeuroticism, Text: "I feel emotionally stable and even-tempered.", Reverse: true},

	// emotional_intelligence
	{ID: 45, Category: CategoryEmotionalIntelligence, Text: "I can accurately identify my own emotions as they occur."},
	{ID: 46, Category: CategoryEmotionalIntelligence, Text: "I understand what triggers my emotional responses."},
	{ID: 47, Category: CategoryEmotionalIntelligence, Text: "I can easily read other people's emotional states."},
	{ID: 48, Category: CategoryEmotionalIntelligence, Text: "I manage my emotions effectively in stressful situations."},
	{ID: 49, Category: CategoryEmotionalIntelligence, Text: "I can motivate myself to persist through difficult tasks."},
	{ID: 50, Category: CategoryEmotionalIntelligence, Text: "I am skilled at helping others manage their emotions."},
	{ID: 51, Category: CategoryEmotionalIntelligence, Text: "I use my emotions to guide my decision-making."},
	{ID: 52, Category: CategoryEmotionalIntelligence, Text: "I can adapt my communication style based on others' emotional needs."},
	{ID: 53, Category: CategoryEmotionalIntelligence, Text: "I recognize when my emotions might cloud my judgment."},
	{ID: 54, Category: CategoryEmotionalIntelligence, Text: "I can remain empathetic even when I disagree with someone."},

	// leadership
	{ID: 55, Category: CategoryLeadership, Text: "I naturally take charge in group situations."},
	{ID: 56, Category: CategoryLeadership, Text: "I can inspire others to work toward a common vision."},
	{ID: 57, Category: CategoryLeadership, Text: "I delegate tasks effectively and trust others to deliver."},
	{ID: 58, Category: CategoryLeadership, Text: "I am comfortable making difficult decisions that affect others."},
	{ID: 59, Category: CategoryLeadership, Text: "I provide constructive feedback to help others improve."},
	{ID: 60, Category: CategoryLeadership, Text: "I can influence others without using formal authority."},
	{ID: 61, Category: CategoryLeadership, Text: "I take responsibility for team failures as well as successes."},
	{ID: 62, Category: CategoryLeadership, Text: "I adapt my leadership style to different people and situations."},

	// resilience
	{ID: 63, Category: CategoryResilience, Text: "I bounce back quickly from setbacks and failures."},
	{ID: 64, Category: CategoryResilience, Text: "I view challenges as opportunities for growth."},
	{ID: 65, Category: CategoryResilience, Text: "I maintain my performance during times of uncertainty."},
	{ID: 66, Category: CategoryResilience, Text: "I adapt quickly to changes in my environment."},
	{ID: 67, Category: CategoryResilience, Text: "I learn from my mistakes and apply those lessons."},
	{ID: 68, Category: CategoryResilience, Text: "I can maintain a positive attitude during difficult times."},
	{ID: 69, Category: CategoryResilience, Text: "I seek support from others when facing major challenges."},
	{ID: 70, Category: CategoryResilience, Text: "I persist through obstacles even when progress is slow."},

	// decision_making
	{ID: 71, Category: CategoryDecisionMaking, Text: "I am comfortable making decisions with incomplete information."},
	{ID: 72, Category: CategoryDecisionMaking, Text: "I consider multiple perspectives before making important decisions."},
	{ID: 73, Category: CategoryDecisionMaking, Text: "I am willing to take calculated risks to achieve my goals."},
	{ID: 74, Category: CategoryDecisionMaking, Text: "I analyze potential consequences thoroughly before acting."},
	{ID: 75, Category: CategoryDecisionMaking, Text: "I trust my intuition when making quick decisions."},
	{ID: 76, Category: CategoryDecisionMaking, Text: "I seek input from others before making major decisions."},
	{ID: 77, Category: CategoryDecisionMaking, Text: "I am decisive and avoid excessive deliberation."},
	{ID: 78, Category: CategoryDecisionMaking, Text: "I take responsibility for the outcomes of my decisions."},

	// innovation
	{ID: 79, Category: CategoryInnovation, Text: "I often generate original ideas and solutions."},
	{ID: 80, Category: CategoryInnovation, Text: "I challenge conventional ways of doing things."},
	{ID: 81, Category: CategoryInnovation, Text: "I am excited by the possibility of creating something new."},
	{ID: 82, Category: CategoryInnovation, Text: "I can see connections between seemingly unrelated concepts."},
	{ID: 83, Category: CategoryInnovation, Text: "I experiment with new approaches even if they might fail."},
	{ID: 84, Category: CategoryInnovation, Text: "I encourage others to think outside the box."},
}
