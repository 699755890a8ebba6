package constants

// AniListGraphQLURL is the AniList API endpoint.
const AniListGraphQLURL = "https://graphql.anilist.co"

// MaxRating is the upper bound of the 1..10 user rating scale.
const MaxRating = 10
