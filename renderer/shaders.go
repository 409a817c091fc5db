package renderer

// Shader sources for the forward PBR pass. The program cache injects the
// define block (LIGHT_COUNT, LIGHT_TYPE_*, USE_IBL, OUTPUT_SRGB) right after
// the #version directive, so any change to the light configuration compiles
// a fresh program.

const vertexShaderSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 fragWorldPos;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    vec4 worldPos = uModel * vec4(inPosition, 1.0);
    gl_Position  = uProjection * uView * worldPos;
    fragWorldPos = worldPos.xyz;
    fragNormal   = mat3(uModel) * inNormal;
    fragUV       = inUV;
}
`

// Cook-Torrance microfacet BRDF with GGX distribution, Smith/Schlick-GGX
// geometry, and Schlick Fresnel. Host-side colors arrive sRGB-encoded in
// [0,1]; linearization happens here, never on the host.
const fragmentShaderSrc = `
#version 410 core
in vec3 fragWorldPos;
in vec3 fragNormal;
in vec2 fragUV;

out vec4 outColor;

struct Light {
    int   type;      // LIGHT_TYPE_POINT or LIGHT_TYPE_DIRECTIONAL
    vec3  position;  // world space, point lights
    vec3  direction; // world space, directional lights
    vec3  color;     // sRGB-encoded [0,1]
    float intensity;
};

#if LIGHT_COUNT > 0
uniform Light uLights[LIGHT_COUNT];
#endif

struct Attributes {
    vec3  albedo;    // sRGB-encoded [0,1]
    float metallic;
    float roughness;
};
uniform Attributes uAttributes;

uniform vec3 uCameraPos;

#ifdef USE_IBL
uniform sampler2D uEnvDiffuse; // RGBM-encoded equirectangular irradiance
uniform float uEnvRange;
#endif

const float PI = 3.14159265359;

// ── sRGB transfer ────────────────────────────────────────────────────────────

vec3 srgbToLinear(vec3 c) {
    vec3 knee = step(vec3(0.04045), c);
    vec3 lo   = c / 12.92;
    vec3 hi   = pow((c + 0.055) / 1.055, vec3(2.4));
    return mix(lo, hi, knee);
}

vec3 linearToSrgb(vec3 c) {
    vec3 knee = step(vec3(0.0031308), c);
    vec3 lo   = c * 12.92;
    vec3 hi   = 1.055 * pow(c, vec3(1.0 / 2.4)) - 0.055;
    return mix(lo, hi, knee);
}

// ── Cook-Torrance terms ──────────────────────────────────────────────────────

float distributionGGX(float NdH, float roughness) {
    float a  = roughness * roughness;
    float a2 = a * a;
    float d  = NdH * NdH * (a2 - 1.0) + 1.0;
    return a2 / (PI * d * d);
}

float geometrySchlickGGX(float cosTheta, float roughness) {
    float r = roughness + 1.0;
    float k = (r * r) / 8.0;
    return cosTheta / (cosTheta * (1.0 - k) + k);
}

float geometrySmith(float NdV, float NdL, float roughness) {
    return geometrySchlickGGX(NdV, roughness) * geometrySchlickGGX(NdL, roughness);
}

vec3 fresnelSchlick(float HdV, vec3 F0) {
    return F0 + (1.0 - F0) * pow(clamp(1.0 - HdV, 0.0, 1.0), 5.0);
}

vec3 evalLight(vec3 N, vec3 V, vec3 L, vec3 radiance, vec3 albedo, float metallic, float roughness, vec3 F0) {
    float NdL = max(dot(N, L), 0.0);
    if (NdL <= 0.0) return vec3(0.0);

    vec3  H   = normalize(V + L);
    float NdV = max(dot(N, V), 0.0);

    float D = distributionGGX(max(dot(N, H), 0.0), roughness);
    float G = geometrySmith(NdV, NdL, roughness);
    vec3  F = fresnelSchlick(max(dot(H, V), 0.0), F0);

    vec3 specular = D * G * F / max(4.0 * NdV * NdL, 0.001);
    vec3 diffuse  = (vec3(1.0) - F) * (1.0 - metallic) * albedo / PI;

    return (diffuse + specular) * radiance * NdL;
}

#ifdef USE_IBL
vec2 equirectUV(vec3 dir) {
    float phi   = atan(dir.z, dir.x);
    float theta = asin(clamp(dir.y, -1.0, 1.0));
    return vec2(phi / (2.0 * PI) + 0.5, theta / PI + 0.5);
}
#endif

void main() {
    vec3 N = normalize(fragNormal);
    vec3 V = normalize(uCameraPos - fragWorldPos);

    vec3  albedo    = srgbToLinear(uAttributes.albedo);
    float metallic  = uAttributes.metallic;
    float roughness = uAttributes.roughness;
    vec3  F0        = mix(vec3(0.04), albedo, metallic);

    vec3 color = vec3(0.0);

#if LIGHT_COUNT > 0
    for (int i = 0; i < LIGHT_COUNT; i++) {
        Light l = uLights[i];
        vec3 L;
        if (l.type == LIGHT_TYPE_DIRECTIONAL) {
            L = normalize(-l.direction);
        } else {
            L = normalize(l.position - fragWorldPos);
        }
        vec3 radiance = srgbToLinear(l.color) * l.intensity;
        color += evalLight(N, V, L, radiance, albedo, metallic, roughness, F0);
    }
#endif

#ifdef USE_IBL
    vec4 env = texture(uEnvDiffuse, equirectUV(N));
    vec3 irradiance = env.rgb * env.a * uEnvRange;
    color += irradiance * albedo;
#endif

#ifdef OUTPUT_SRGB
    color = linearToSrgb(color);
#endif
    outColor = vec4(color, 1.0);
}
`
