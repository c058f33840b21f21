package claude

import "fmt"

// buildPrompt creates the enrichment prompt for a single word.
func buildPrompt(word string) string {
	return fmt.Sprintf(`You are a helpful English language teacher creating dictionary entries for English as a Foreign Language (EFL) learners.

Provide comprehensive information about the word: "%s"

Return your response as valid JSON with the following structure:

{
  "recognized": true,
  "phonetic": {
    "ipa_transcription": "IPA phonetic transcription (e.g., /wɜːrd/)",
    "audio_url": null
  },
  "definitions": [
    {
      "definition_text": "Clear, simple definition appropriate for learners (10-500 characters)",
      "part_of_speech": "noun|verb|adjective|adverb|pronoun|preposition|conjunction|interjection|determiner|modal",
      "usage_context": "optional context like 'informal', 'technical', 'formal', or null",
      "examples": [
        {
          "example_text": "Natural example sentence using the word",
          "context_type": "casual"
        },
        {
          "example_text": "Another example in a different context",
          "context_type": "academic"
        },
        {
          "example_text": "A third example showing different usage",
          "context_type": "business"
        }
      ]
    }
  ],
  "grammatical_info": {
    "part_of_speech": "primary part of speech",
    "plural_form": "plural form for nouns (or null)",
    "verb_base": "base form for verbs (or null)",
    "verb_past_simple": "past simple tense (or null)",
    "verb_past_participle": "past participle (or null)",
    "verb_present_participle": "present participle (or null)",
    "verb_third_person": "3rd person singular present (or null)",
    "adj_comparative": "comparative form for adjectives (or null)",
    "adj_superlative": "superlative form for adjectives (or null)"
  },
  "related_words": [
    {
      "word": "synonym word",
      "relationship_type": "synonym",
      "usage_notes": "Explain subtle differences in usage or context"
    },
    {
      "word": "antonym word",
      "relationship_type": "antonym",
      "usage_notes": "Explain the contrast or difference"
    },
    {
      "word": "derivative word",
      "relationship_type": "derivative",
      "usage_notes": "Explain the morphological relationship"
    }
  ],
  "learning_metadata": {
    "cefr_level": "estimated CEFR level A1|A2|B1|B2|C1|C2 (or null)",
    "style_tags": ["style tags like 'formal', 'slang', 'archaic' (or empty list)"]
  }
}

IMPORTANT GUIDELINES:
1. If "%s" is not a real English word (a typo, random letters, or a made-up string), return exactly {"recognized": false} and nothing else
2. Definitions should be clear, simple, and appropriate for language learners
3. Provide 3-5 natural usage examples that show the word in DIFFERENT CONTEXTS
4. Each example MUST include:
   - example_text: A complete, natural sentence (5-300 characters)
   - context_type: One of 'casual', 'academic', 'business', 'technical', or 'formal'
5. Vary the context_type across examples to demonstrate different usage scenarios
6. Examples should be complete sentences that sound natural and contain the target word
7. Include IPA phonetic transcription (use standard IPA notation)
8. For grammatical forms, ALWAYS fill in ALL fields relevant to the part of speech:
   - Nouns: plural_form (show irregular plurals like "children", "mice", "feet")
   - Verbs: ALL verb forms (base, past_simple, past_participle, present_participle, third_person)
   - Adjectives: comparative and superlative forms when gradable
9. If the word has multiple common meanings, include multiple definitions
10. Order definitions by commonality (most common first)
11. For related_words, provide 3-5 key related words with usage notes explaining when to use one word vs another

Return ONLY valid JSON, no additional text or explanation.`, word, word)
}
