package help

const QuickstartYAML = `# reddit-analysis Quick Start

targets:
  subreddit: "/r/<name> walks the subreddit's top submissions"
  redditor: "/u/<name> walks the user's recent comments and submissions"

commands:
  subreddit_month: |
    reddit-analysis myBotUser /r/programming

  subreddit_week_top_50: |
    reddit-analysis -p week -l 50 myBotUser /r/golang

  redditor: |
    reddit-analysis myBotUser /u/spez

  once_per_block: |
    reddit-analysis -o myBotUser /r/programming

  stemmed_english_only: |
    reddit-analysis --stem --lang en myBotUser /r/europe

  follow_links: |
    reddit-analysis --fetch-links myBotUser /r/worldnews

  cached_rerun: |
    reddit-analysis --cache-dir .reddit-cache --max-age 1h myBotUser /r/programming

  with_report: |
    reddit-analysis --report report.yaml myBotUser /r/programming

  run_history: |
    reddit-analysis history
    reddit-analysis history -n 10

output:
  corpus: "<target>.csv (user-<target>.csv for redditors), also printed to stdout"
  format: "each kept word repeated once per occurrence, separated by spaces"
  consumers: "paste the corpus into any word-cloud generator"

word_filtering:
  - "words are lowercased and stripped of surrounding punctuation"
  - "common words from common-words.csv and the system dictionary are dropped"
  - "words dominating a single text block beyond the threshold are dropped as spam"
  - "words seen fewer than three times never reach the corpus"
  - "pure numbers never reach the corpus"

config_file:
  - "pass --config config.yaml to override word sources and defaults"
  - "fields: common_words, dictionary, excluded, min_count, user_agent, base_url, db_path"

run_history:
  - "every run is recorded in a local SQLite database"
  - "'reddit-analysis history' lists past runs with their outcomes"

exit_codes:
  - "0: analysis completed"
  - "1: word sources or run setup failed"
  - "2: bad usage (unknown period, malformed target)"
`
