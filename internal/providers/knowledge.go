package providers

// topicKnowledge holds the candidate strings the offline generator samples
// from when building a chapter for a known topic.
type topicKnowledge struct {
	Introductions []string
	CoreConcepts  []string
	Examples      []string
	Exercises     []string
	Takeaways     []string
}

// knowledgeTable is the built-in topic catalog. Chapters under an unknown
// topic fall back to the generic filler strategy instead.
var knowledgeTable = map[string]topicKnowledge{
	"Digital Marketing Strategy": {
		Introductions: []string{
			"This chapter will delve into the core principles of creating a successful digital marketing strategy. We will explore how to define your audience, set clear objectives, and choose the right channels to reach your goals.",
			"Building a digital marketing plan is the first step towards achieving online success. In this section, we'll cover the foundational elements of a robust strategy, from market research to performance measurement.",
			"A well-crafted digital marketing strategy acts as a roadmap for your business's online presence. This chapter will guide you through the process of creating a comprehensive plan that aligns with your business objectives.",
		},
		CoreConcepts: []string{
			"Understanding your target audience is paramount. Develop detailed buyer personas to represent your ideal customers. Consider their demographics, psychographics, pain points, and online behavior. This will inform every aspect of your strategy.",
			"Setting SMART (Specific, Measurable, Achievable, Relevant, Time-bound) goals is crucial for success. Instead of a vague goal like 'increase online sales,' aim for something like 'achieve a 15% increase in e-commerce revenue in the next quarter.'",
			"The marketing funnel (Awareness, Consideration, Conversion, Loyalty) is a key concept. Your strategy should include tactics for each stage to guide potential customers on their journey from discovery to purchase and beyond.",
		},
		Examples: []string{
			"For a local bakery, a good SMART goal would be: 'Increase online pre-orders for custom cakes by 25% within the next 6 months by running targeted Facebook ads and improving the website's SEO for local search terms.'",
			"A B2B software company might create a buyer persona named 'IT Manager Mike,' who is 35-45 years old, values efficiency and data security, and reads industry blogs and LinkedIn articles.",
		},
		Exercises: []string{
			"Draft one complete buyer persona for your business. Include their demographics, goals, challenges, and preferred communication channels.",
			"Define three SMART goals for your next marketing campaign.",
		},
		Takeaways: []string{
			"A successful digital marketing strategy is built on a deep understanding of your audience and clear, measurable goals.",
			"A multi-channel approach that integrates SEO, PPC, content, and email marketing is typically more effective than relying on a single tactic.",
		},
	},
}

// fillerParagraphs feed the generic strategy used for unknown topics. They
// are concatenated until the chapter reaches its word-count floor.
var fillerParagraphs = []string{
	"In this section we take a practical look at the subject, breaking it down into the pieces that matter most to a reader encountering it for the first time. Rather than abstract theory, the focus stays on decisions you will actually face and the trade-offs behind each one.",
	"It helps to start from first principles. Ask what problem is really being solved, who benefits from solving it, and what the simplest workable approach would look like. Most of the complexity people associate with this topic comes from skipping that step and adopting sophisticated tools before the fundamentals are settled.",
	"Consider a concrete scenario. A small team with limited time and budget needs results within a quarter. The techniques described here scale down to that situation just as well as they scale up to a large organization, provided the goals are written down, measurable, and reviewed on a regular cadence.",
	"Common pitfalls deserve attention too. The most frequent mistake is treating early assumptions as fixed facts. Build in checkpoints where you revisit what you believed at the start, compare it with what the data now shows, and adjust course without treating the change as a failure.",
	"Finally, keep a record of what you tried and what happened. A short written log of decisions, expected outcomes, and actual outcomes turns scattered experience into a reusable playbook, and it is the cheapest investment you can make in getting better at this over time.",
}

// KnownTopic reports whether the offline knowledge table covers topic.
func KnownTopic(topic string) bool {
	_, ok := knowledgeTable[topic]
	return ok
}
